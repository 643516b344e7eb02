// Package ports holds the interfaces the roster layers meet at. The HTTP
// handlers and rosterctl call RosterService; the app layer calls
// RosterStore; readiness goes through HealthRegistry.
package ports
