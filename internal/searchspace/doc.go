// Package searchspace validates numeric search-space specifications and
// expands them into candidate sequences for the hypothesis generator.
//
// It is the leaf component of the resolution pipeline: it knows nothing
// about scopes or subjects, only about a single Int64Range (fixed value
// vs. floor/ceiling/step) and about whole JvmSearchSpace records.
package searchspace
