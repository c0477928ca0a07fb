// Package text splits running Spanish text into word and punctuation tokens.
package text
