// Package diagnostic collects the errors and warnings of a generation run.
//
// Each diagnostic names the struct and, where relevant, the delegate field it
// is about, so a failed run can report every problem at once instead of
// stopping at the first package.
package diagnostic
