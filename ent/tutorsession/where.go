// Code generated by ent, DO NOT EDIT.

package tutorsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/yojanabuddy/teachme/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldEQ(FieldUserID, v))
}

// NoteID applies equality check predicate on the "note_id" field. It's identical to NoteIDEQ.
func NoteID(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldEQ(FieldNoteID, v))
}

// Mode applies equality check predicate on the "mode" field. It's identical to ModeEQ.
func Mode(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldEQ(FieldMode, v))
}

// IsCompleted applies equality check predicate on the "is_completed" field. It's identical to IsCompletedEQ.
func IsCompleted(v bool) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldEQ(FieldIsCompleted, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int64) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldEQ(FieldVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldContainsFold(FieldUserID, v))
}

// NoteIDEQ applies the EQ predicate on the "note_id" field.
func NoteIDEQ(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldEQ(FieldNoteID, v))
}

// NoteIDNEQ applies the NEQ predicate on the "note_id" field.
func NoteIDNEQ(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldNEQ(FieldNoteID, v))
}

// NoteIDIn applies the In predicate on the "note_id" field.
func NoteIDIn(vs ...string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldIn(FieldNoteID, vs...))
}

// NoteIDNotIn applies the NotIn predicate on the "note_id" field.
func NoteIDNotIn(vs ...string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldNotIn(FieldNoteID, vs...))
}

// NoteIDGT applies the GT predicate on the "note_id" field.
func NoteIDGT(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldGT(FieldNoteID, v))
}

// NoteIDGTE applies the GTE predicate on the "note_id" field.
func NoteIDGTE(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldGTE(FieldNoteID, v))
}

// NoteIDLT applies the LT predicate on the "note_id" field.
func NoteIDLT(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldLT(FieldNoteID, v))
}

// NoteIDLTE applies the LTE predicate on the "note_id" field.
func NoteIDLTE(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldLTE(FieldNoteID, v))
}

// NoteIDContains applies the Contains predicate on the "note_id" field.
func NoteIDContains(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldContains(FieldNoteID, v))
}

// NoteIDHasPrefix applies the HasPrefix predicate on the "note_id" field.
func NoteIDHasPrefix(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldHasPrefix(FieldNoteID, v))
}

// NoteIDHasSuffix applies the HasSuffix predicate on the "note_id" field.
func NoteIDHasSuffix(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldHasSuffix(FieldNoteID, v))
}

// NoteIDEqualFold applies the EqualFold predicate on the "note_id" field.
func NoteIDEqualFold(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldEqualFold(FieldNoteID, v))
}

// NoteIDContainsFold applies the ContainsFold predicate on the "note_id" field.
func NoteIDContainsFold(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldContainsFold(FieldNoteID, v))
}

// ModeEQ applies the EQ predicate on the "mode" field.
func ModeEQ(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldEQ(FieldMode, v))
}

// ModeNEQ applies the NEQ predicate on the "mode" field.
func ModeNEQ(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldNEQ(FieldMode, v))
}

// ModeIn applies the In predicate on the "mode" field.
func ModeIn(vs ...string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldIn(FieldMode, vs...))
}

// ModeNotIn applies the NotIn predicate on the "mode" field.
func ModeNotIn(vs ...string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldNotIn(FieldMode, vs...))
}

// ModeGT applies the GT predicate on the "mode" field.
func ModeGT(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldGT(FieldMode, v))
}

// ModeGTE applies the GTE predicate on the "mode" field.
func ModeGTE(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldGTE(FieldMode, v))
}

// ModeLT applies the LT predicate on the "mode" field.
func ModeLT(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldLT(FieldMode, v))
}

// ModeLTE applies the LTE predicate on the "mode" field.
func ModeLTE(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldLTE(FieldMode, v))
}

// ModeContains applies the Contains predicate on the "mode" field.
func ModeContains(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldContains(FieldMode, v))
}

// ModeHasPrefix applies the HasPrefix predicate on the "mode" field.
func ModeHasPrefix(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldHasPrefix(FieldMode, v))
}

// ModeHasSuffix applies the HasSuffix predicate on the "mode" field.
func ModeHasSuffix(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldHasSuffix(FieldMode, v))
}

// ModeEqualFold applies the EqualFold predicate on the "mode" field.
func ModeEqualFold(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldEqualFold(FieldMode, v))
}

// ModeContainsFold applies the ContainsFold predicate on the "mode" field.
func ModeContainsFold(v string) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldContainsFold(FieldMode, v))
}

// IsCompletedEQ applies the EQ predicate on the "is_completed" field.
func IsCompletedEQ(v bool) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldEQ(FieldIsCompleted, v))
}

// IsCompletedNEQ applies the NEQ predicate on the "is_completed" field.
func IsCompletedNEQ(v bool) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldNEQ(FieldIsCompleted, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int64) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int64) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int64) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int64) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int64) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int64) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int64) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int64) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldLTE(FieldVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TutorSession {
	return predicate.TutorSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TutorSession) predicate.TutorSession {
	return predicate.TutorSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TutorSession) predicate.TutorSession {
	return predicate.TutorSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TutorSession) predicate.TutorSession {
	return predicate.TutorSession(sql.NotPredicates(p))
}
