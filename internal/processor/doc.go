// Package processor contains the core logic for analysing Spanish words. It
// runs syllabification and IPA transcription, asks an optional reference
// provider for a second opinion, fills in translations, processes batch
// files in parallel and turns the collected analyses into Anki decks. This
// package serves as the main coordinator between all other components.
package processor
