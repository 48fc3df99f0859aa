// Package utils holds small pure helpers shared across features.
package utils
