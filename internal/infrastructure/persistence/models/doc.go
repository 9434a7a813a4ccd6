// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer pure and free
// from ORM concerns.
//
// Key Principles:
// 1. Domain entities should be free of GORM tags and infrastructure concerns
// 2. Persistence models contain all GORM annotations and table mappings
// 3. Mappers convert between domain entities and persistence models
// 4. Repositories use persistence models for database operations
//
// Structure:
// - base.go: Base persistence model shared by all tables
// - user.go: User accounts
// - trip.go: Trips with their JSON-encoded itinerary days
// - budget.go: Budgets with their JSON-encoded embedded expenses
// - location.go: Saved map locations with photos and checklist tasks
package models
