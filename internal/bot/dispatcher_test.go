package bot_test

import (
	"context"
	"strings"
	"testing"

	"cinebob/internal/bot"
	"cinebob/internal/catalog"
	"cinebob/internal/logging"
	"cinebob/internal/recommend"
	"cinebob/internal/testsupport"
)

func newTestDispatcher(t *testing.T) *bot.Dispatcher {
	t.Helper()

	svc := recommend.NewService(testsupport.NewCatalog(t),
		recommend.WithSeed(42),
		recommend.WithPopularLimits(2, 3))
	return bot.NewDispatcher(svc, logging.NewNop())
}

func dispatch(t *testing.T, d *bot.Dispatcher, command, args string) string {
	t.Helper()

	reply, err := d.Dispatch(context.Background(), bot.Request{Command: command, Args: args})
	if err != nil {
		t.Fatalf("dispatch /%s: %v", command, err)
	}
	return reply
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		text    string
		command string
		args    string
		ok      bool
	}{
		{"/start", "start", "", true},
		{"/popular 3", "popular", "3", true},
		{"/recommend@CineBobBot drama", "recommend", "drama", true},
		{"  /HELP  ", "help", "", true},
		{"/recommend science fiction", "recommend", "science fiction", true},
		{"hello there", "", "", false},
		{"/", "", "", false},
		{"", "", "", false},
	}

	for _, tc := range tests {
		command, args, ok := bot.ParseCommand(tc.text)
		if command != tc.command || args != tc.args || ok != tc.ok {
			t.Errorf("ParseCommand(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tc.text, command, args, ok, tc.command, tc.args, tc.ok)
		}
	}
}

func TestStartGreeting(t *testing.T) {
	d := newTestDispatcher(t)

	reply := dispatch(t, d, "start", "")
	if !strings.Contains(reply, "CineBob") {
		t.Fatalf("greeting = %q", reply)
	}
}

func TestUnknownCommandHint(t *testing.T) {
	d := newTestDispatcher(t)

	reply := dispatch(t, d, "teleport", "")
	if !strings.Contains(reply, "/teleport") || !strings.Contains(reply, "/help") {
		t.Fatalf("unknown command reply = %q", reply)
	}
}

func TestHelpListsAllCommands(t *testing.T) {
	d := newTestDispatcher(t)

	reply := dispatch(t, d, "help", "")
	for _, name := range []string{"/start", "/help", "/recommend", "/genres", "/popular", "/random"} {
		if !strings.Contains(reply, name) {
			t.Fatalf("help reply missing %s: %q", name, reply)
		}
	}
}

func TestRecommendByGenreReply(t *testing.T) {
	d := newTestDispatcher(t)

	reply := dispatch(t, d, "recommend", "romance")
	if !strings.Contains(reply, "Romance") {
		t.Fatalf("reply should mention the genre: %q", reply)
	}
	if !strings.Contains(reply, "Glass Orchard (1999)") {
		t.Fatalf("reply should contain the only romance title: %q", reply)
	}
}

func TestRecommendNoMatchReply(t *testing.T) {
	d := newTestDispatcher(t)

	reply := dispatch(t, d, "recommend", "opera")
	if reply != bot.NoMatchReply("opera") {
		t.Fatalf("reply = %q, want fixed no-match message", reply)
	}
	if !strings.Contains(reply, "/genres") {
		t.Fatalf("no-match reply should point at /genres: %q", reply)
	}
}

func TestGenresReply(t *testing.T) {
	d := newTestDispatcher(t)

	reply := dispatch(t, d, "genres", "")
	for _, genre := range []string{"Action", "Crime", "Drama", "Romance"} {
		if !strings.Contains(reply, genre) {
			t.Fatalf("genres reply missing %s: %q", genre, reply)
		}
	}
}

func TestPopularReply(t *testing.T) {
	d := newTestDispatcher(t)

	reply := dispatch(t, d, "popular", "")
	if !strings.Contains(reply, "Top 2 movies") {
		t.Fatalf("popular reply = %q", reply)
	}
	if !strings.Contains(reply, "The Quiet Harbor (1994)") {
		t.Fatalf("popular reply missing top movie: %q", reply)
	}
}

func TestPopularRejectsBadArgument(t *testing.T) {
	d := newTestDispatcher(t)

	for _, arg := range []string{"abc", "-3", "0"} {
		reply := dispatch(t, d, "popular", arg)
		if !strings.Contains(reply, "positive number") {
			t.Fatalf("popular %q reply = %q", arg, reply)
		}
	}
}

func TestPopularCapsRequestedCount(t *testing.T) {
	d := newTestDispatcher(t)

	reply := dispatch(t, d, "popular", "100")
	if !strings.Contains(reply, "Top 3 movies") {
		t.Fatalf("popular 100 should cap at 3: %q", reply)
	}
}

func TestRandomReply(t *testing.T) {
	d := newTestDispatcher(t)

	reply := dispatch(t, d, "random", "")
	if !strings.Contains(reply, "random pick") {
		t.Fatalf("random reply = %q", reply)
	}
}

func TestEmptyCatalogReplies(t *testing.T) {
	empty := recommend.NewService(catalog.New(nil))
	d := bot.NewDispatcher(empty, logging.NewNop())

	for _, command := range []string{"recommend", "genres", "popular", "random"} {
		reply := dispatch(t, d, command, "")
		if !strings.Contains(reply, "empty") {
			t.Fatalf("/%s on empty catalog = %q", command, reply)
		}
	}
}

func TestFormatMovieEscapesHTML(t *testing.T) {
	movie := testsupport.Movies()[0]
	movie.Title = "Fast & <Furious>"

	formatted := bot.FormatMovie(movie)
	if strings.Contains(formatted, "<Furious>") {
		t.Fatalf("title not escaped: %q", formatted)
	}
	if !strings.Contains(formatted, "&amp;") || !strings.Contains(formatted, "&lt;Furious&gt;") {
		t.Fatalf("escaped output = %q", formatted)
	}
}

func TestPlainTextStripsMarkup(t *testing.T) {
	in := "<b>Heat (1995)</b>\n<i>Cops &amp; robbers</i>"
	want := "Heat (1995)\nCops & robbers"
	if got := bot.PlainText(in); got != want {
		t.Fatalf("PlainText = %q, want %q", got, want)
	}
}
