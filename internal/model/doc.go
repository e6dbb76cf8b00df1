// Package model holds the plain data types exchanged between widgets, the
// worker and the store.
package model
