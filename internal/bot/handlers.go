package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"cinebob/internal/catalog"
	"cinebob/internal/recommend"
)

const (
	greeting = "Hello! I am a CineBob!\nI can help you to find a movie to watch. Try /recommend, /popular, or /random."

	emptyCatalogReply = "My movie catalog is empty right now. Please try again later."
)

// NoMatchReply is the fixed reply for a genre with no matching movies.
func NoMatchReply(genre string) string {
	return fmt.Sprintf("No movies found for genre %q. Try /genres to see what I know.", genre)
}

func handleStart(_ context.Context, _ Request) (string, error) {
	return greeting, nil
}

func handleRecommend(svc *recommend.Service) Handler {
	return func(_ context.Context, req Request) (string, error) {
		genre := strings.TrimSpace(req.Args)
		movie, ok := svc.Recommend(genre)
		if !ok {
			if genre == "" {
				return emptyCatalogReply, nil
			}
			return NoMatchReply(genre), nil
		}
		if genre != "" {
			return fmt.Sprintf("How about some %s?\n\n%s", catalog.DisplayGenre(genre), FormatMovie(movie)), nil
		}
		return "Here is my pick:\n\n" + FormatMovie(movie), nil
	}
}

func handleGenres(svc *recommend.Service) Handler {
	return func(_ context.Context, _ Request) (string, error) {
		genres := svc.Genres()
		if len(genres) == 0 {
			return emptyCatalogReply, nil
		}
		var sb strings.Builder
		sb.WriteString("I know these genres:\n")
		for _, genre := range genres {
			sb.WriteString("• ")
			sb.WriteString(EscapeHTML(genre))
			sb.WriteByte('\n')
		}
		sb.WriteString("\nUse /recommend <genre> to get a pick.")
		return sb.String(), nil
	}
}

func handlePopular(svc *recommend.Service) Handler {
	return func(_ context.Context, req Request) (string, error) {
		count := 0
		if args := strings.TrimSpace(req.Args); args != "" {
			parsed, err := strconv.Atoi(args)
			if err != nil || parsed <= 0 {
				return fmt.Sprintf("I need a positive number, like /popular %d.", svc.PopularDefault()), nil
			}
			count = parsed
		}
		movies := svc.Popular(count)
		if len(movies) == 0 {
			return emptyCatalogReply, nil
		}
		var sb strings.Builder
		fmt.Fprintf(&sb, "Top %d movies by rating:\n", len(movies))
		for i, movie := range movies {
			fmt.Fprintf(&sb, "%d. <b>%s</b> · %.1f\n", i+1, EscapeHTML(movie.DisplayTitle()), movie.Rating)
		}
		return strings.TrimRight(sb.String(), "\n"), nil
	}
}

func handleRandom(svc *recommend.Service) Handler {
	return func(_ context.Context, _ Request) (string, error) {
		movie, ok := svc.Random()
		if !ok {
			return emptyCatalogReply, nil
		}
		return "Totally random pick:\n\n" + FormatMovie(movie), nil
	}
}

// FormatMovie renders one movie as a Telegram HTML reply block.
func FormatMovie(movie catalog.Movie) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<b>%s</b>", EscapeHTML(movie.DisplayTitle()))
	if movie.Rating > 0 {
		fmt.Fprintf(&sb, "\nRating: %.1f", movie.Rating)
	}
	if len(movie.Genres) > 0 {
		fmt.Fprintf(&sb, "\nGenres: %s", EscapeHTML(strings.Join(movie.Genres, ", ")))
	}
	if plot := strings.TrimSpace(movie.Plot); plot != "" {
		fmt.Fprintf(&sb, "\n<i>%s</i>", EscapeHTML(plot))
	}
	return sb.String()
}

// EscapeHTML escapes the characters Telegram's HTML parse mode treats
// specially.
func EscapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

var plainTextReplacer = strings.NewReplacer(
	"<b>", "", "</b>", "",
	"<i>", "", "</i>", "",
	"&lt;", "<", "&gt;", ">", "&amp;", "&",
)

// PlainText converts a Telegram HTML reply to terminal-friendly text.
func PlainText(s string) string {
	return plainTextReplacer.Replace(s)
}
