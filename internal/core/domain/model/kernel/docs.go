// Package kernel contains shared value objects used across all domain models.
// These are the building blocks of the domain: validated identifiers and
// monetary amounts that cannot exist in an invalid state.
package kernel
