// Package application provides application initialization and dependency wiring.
// It builds the animal catalog, calculator, handlers, router and HTTP server,
// keeping the main package focused on CLI parsing and orchestration.
package application
