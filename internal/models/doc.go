// Package models lists the OpenAI chat models that can serve as reference
// transcribers or translators.
package models
