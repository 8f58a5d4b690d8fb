// Package plan selects the declarations to generate and derives their
// implementations, grouped by package.
//
// A declaration is selected when its doc comment carries //realm:derive or
// when its name is listed in the Selection. A package in which any selected
// declaration fails gets no implementations at all, so a broken struct never
// leaves half of its package generated.
package plan
