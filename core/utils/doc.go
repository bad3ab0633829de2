// Package utils provides common conversion helpers.
// Room parameters are stored as text, so values written and read through the
// building model pass through ToString and ToInt.
package utils
