// Package util provides small generic helpers and input validation for the
// client kit, including the server base URL check used by settings forms.
package util
