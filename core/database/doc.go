// Package database manages the GORM connection used by every feature.
//
// It supports MySQL for deployments and SQLite (including in-memory) for
// tests and small single-node setups. The driver is selected through the
// Driver field of Config.
//
// Connections are configured with conservative pool limits and verified
// with a ping before being handed to the application.
package database
