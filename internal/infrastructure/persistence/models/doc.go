// Package models contains the GORM persistence models and their mappings to
// and from the domain entities. Domain aggregates stay free of ORM tags; all
// schema knowledge lives here and in the SQL migrations.
package models
