package controllers

import "time"

// Los campos opcionales vacíos se guardan como NULL, no como cadena vacía.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullIfZero(n int) *int {
	if n == 0 {
		return nil
	}
	return &n
}

// Las fechas se persisten como texto ISO; el orden lexicográfico coincide
// con el cronológico.
func isoNow() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
}

func isoToday() string {
	return time.Now().UTC().Format("2006-01-02")
}
