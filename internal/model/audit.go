package model

import "gorm.io/gorm"

// AuditLog adalah fakta audit append-only. Setiap perubahan state engine
// (submit, review, check-in, dst) menulis satu baris; tidak pernah diupdate.
type AuditLog struct {
	gorm.Model
	ActorID   uint   `json:"actor_id"`
	ActorRole string `json:"actor_role"`
	Action    string `json:"action"` // contoh: permission.review
	Entity    string `json:"entity"` // contoh: permission
	EntityID  uint   `json:"entity_id"`
	Detail    string `json:"detail"`
}
