// Package report renders word and sentence analyses as styled text, JSON
// or YAML.
package report
