// Package validation provides struct-tag and manual field validation built
// on go-playground/validator. Settings structs declare their constraints
// with `validate` tags; checks that tags cannot express are collected with
// a Validator.
package validation
