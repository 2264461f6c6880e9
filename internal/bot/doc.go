// Package bot maps incoming chat commands to reply text.
//
// The dispatcher is transport-agnostic: the Telegram poller (or a test, or
// the CLI) hands it a Request and gets back the reply string. User mistakes
// such as an unknown genre or a malformed count come back as friendly reply
// text, never as errors; errors are reserved for genuine handler failures.
package bot
