// Package match splits Go identifiers into words and finds names that look
// alike.
//
// Tokens and SnakeCase name generated files after their type. Similarity and
// Suggest turn a missing delegate field into "did you mean" hints.
package match
