// Package telegram implements the minimal slice of the Telegram Bot API
// the daemon needs: identity lookup, long-poll update fetching, and
// sending text replies.
//
// The client speaks plain HTTP against the Bot API. The Poller owns the
// fetch/dispatch/reply loop and treats transport failures as retryable,
// so a flaky network never takes the daemon down.
package telegram
