// Package translation translates between Spanish and English with the
// OpenAI chat API. Translations are cached in memory for batch runs and can
// be saved next to exported decks.
package translation
