// Package reference obtains third-party IPA transcriptions of Spanish words
// to compare against the rule-based transcriber. Providers cover the OpenAI
// and Gemini chat models, the espeak-ng binary and the offline goruut
// phonemizer.
package reference
