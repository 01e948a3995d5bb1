// Package utils provides common helper functions for the meeting-sync application.
// It includes resource-URI parsing and the fixed-offset calendar-date arithmetic
// shared by the store queries and the HTTP layer.
package utils
