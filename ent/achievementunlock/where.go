// Code generated by ent, DO NOT EDIT.

package achievementunlock

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/prepmate/engine/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldLTE(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldEQ(FieldOwnerID, v))
}

// AchievementType applies equality check predicate on the "achievement_type" field. It's identical to AchievementTypeEQ.
func AchievementType(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldEQ(FieldAchievementType, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldEQ(FieldDescription, v))
}

// Icon applies equality check predicate on the "icon" field. It's identical to IconEQ.
func Icon(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldEQ(FieldIcon, v))
}

// Rarity applies equality check predicate on the "rarity" field. It's identical to RarityEQ.
func Rarity(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldEQ(FieldRarity, v))
}

// UnlockedAt applies equality check predicate on the "unlocked_at" field. It's identical to UnlockedAtEQ.
func UnlockedAt(v time.Time) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldEQ(FieldUnlockedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDContains applies the Contains predicate on the "owner_id" field.
func OwnerIDContains(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldContains(FieldOwnerID, v))
}

// OwnerIDHasPrefix applies the HasPrefix predicate on the "owner_id" field.
func OwnerIDHasPrefix(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldHasPrefix(FieldOwnerID, v))
}

// OwnerIDHasSuffix applies the HasSuffix predicate on the "owner_id" field.
func OwnerIDHasSuffix(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldHasSuffix(FieldOwnerID, v))
}

// OwnerIDEqualFold applies the EqualFold predicate on the "owner_id" field.
func OwnerIDEqualFold(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldEqualFold(FieldOwnerID, v))
}

// OwnerIDContainsFold applies the ContainsFold predicate on the "owner_id" field.
func OwnerIDContainsFold(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldContainsFold(FieldOwnerID, v))
}

// AchievementTypeEQ applies the EQ predicate on the "achievement_type" field.
func AchievementTypeEQ(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldEQ(FieldAchievementType, v))
}

// AchievementTypeNEQ applies the NEQ predicate on the "achievement_type" field.
func AchievementTypeNEQ(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldNEQ(FieldAchievementType, v))
}

// AchievementTypeIn applies the In predicate on the "achievement_type" field.
func AchievementTypeIn(vs ...string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldIn(FieldAchievementType, vs...))
}

// AchievementTypeNotIn applies the NotIn predicate on the "achievement_type" field.
func AchievementTypeNotIn(vs ...string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldNotIn(FieldAchievementType, vs...))
}

// AchievementTypeGT applies the GT predicate on the "achievement_type" field.
func AchievementTypeGT(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldGT(FieldAchievementType, v))
}

// AchievementTypeGTE applies the GTE predicate on the "achievement_type" field.
func AchievementTypeGTE(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldGTE(FieldAchievementType, v))
}

// AchievementTypeLT applies the LT predicate on the "achievement_type" field.
func AchievementTypeLT(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldLT(FieldAchievementType, v))
}

// AchievementTypeLTE applies the LTE predicate on the "achievement_type" field.
func AchievementTypeLTE(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldLTE(FieldAchievementType, v))
}

// AchievementTypeContains applies the Contains predicate on the "achievement_type" field.
func AchievementTypeContains(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldContains(FieldAchievementType, v))
}

// AchievementTypeHasPrefix applies the HasPrefix predicate on the "achievement_type" field.
func AchievementTypeHasPrefix(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldHasPrefix(FieldAchievementType, v))
}

// AchievementTypeHasSuffix applies the HasSuffix predicate on the "achievement_type" field.
func AchievementTypeHasSuffix(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldHasSuffix(FieldAchievementType, v))
}

// AchievementTypeEqualFold applies the EqualFold predicate on the "achievement_type" field.
func AchievementTypeEqualFold(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldEqualFold(FieldAchievementType, v))
}

// AchievementTypeContainsFold applies the ContainsFold predicate on the "achievement_type" field.
func AchievementTypeContainsFold(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldContainsFold(FieldAchievementType, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldContainsFold(FieldDescription, v))
}

// IconEQ applies the EQ predicate on the "icon" field.
func IconEQ(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldEQ(FieldIcon, v))
}

// IconNEQ applies the NEQ predicate on the "icon" field.
func IconNEQ(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldNEQ(FieldIcon, v))
}

// IconIn applies the In predicate on the "icon" field.
func IconIn(vs ...string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldIn(FieldIcon, vs...))
}

// IconNotIn applies the NotIn predicate on the "icon" field.
func IconNotIn(vs ...string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldNotIn(FieldIcon, vs...))
}

// IconGT applies the GT predicate on the "icon" field.
func IconGT(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldGT(FieldIcon, v))
}

// IconGTE applies the GTE predicate on the "icon" field.
func IconGTE(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldGTE(FieldIcon, v))
}

// IconLT applies the LT predicate on the "icon" field.
func IconLT(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldLT(FieldIcon, v))
}

// IconLTE applies the LTE predicate on the "icon" field.
func IconLTE(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldLTE(FieldIcon, v))
}

// IconContains applies the Contains predicate on the "icon" field.
func IconContains(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldContains(FieldIcon, v))
}

// IconHasPrefix applies the HasPrefix predicate on the "icon" field.
func IconHasPrefix(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldHasPrefix(FieldIcon, v))
}

// IconHasSuffix applies the HasSuffix predicate on the "icon" field.
func IconHasSuffix(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldHasSuffix(FieldIcon, v))
}

// IconEqualFold applies the EqualFold predicate on the "icon" field.
func IconEqualFold(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldEqualFold(FieldIcon, v))
}

// IconContainsFold applies the ContainsFold predicate on the "icon" field.
func IconContainsFold(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldContainsFold(FieldIcon, v))
}

// RarityEQ applies the EQ predicate on the "rarity" field.
func RarityEQ(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldEQ(FieldRarity, v))
}

// RarityNEQ applies the NEQ predicate on the "rarity" field.
func RarityNEQ(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldNEQ(FieldRarity, v))
}

// RarityIn applies the In predicate on the "rarity" field.
func RarityIn(vs ...string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldIn(FieldRarity, vs...))
}

// RarityNotIn applies the NotIn predicate on the "rarity" field.
func RarityNotIn(vs ...string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldNotIn(FieldRarity, vs...))
}

// RarityGT applies the GT predicate on the "rarity" field.
func RarityGT(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldGT(FieldRarity, v))
}

// RarityGTE applies the GTE predicate on the "rarity" field.
func RarityGTE(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldGTE(FieldRarity, v))
}

// RarityLT applies the LT predicate on the "rarity" field.
func RarityLT(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldLT(FieldRarity, v))
}

// RarityLTE applies the LTE predicate on the "rarity" field.
func RarityLTE(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldLTE(FieldRarity, v))
}

// RarityContains applies the Contains predicate on the "rarity" field.
func RarityContains(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldContains(FieldRarity, v))
}

// RarityHasPrefix applies the HasPrefix predicate on the "rarity" field.
func RarityHasPrefix(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldHasPrefix(FieldRarity, v))
}

// RarityHasSuffix applies the HasSuffix predicate on the "rarity" field.
func RarityHasSuffix(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldHasSuffix(FieldRarity, v))
}

// RarityEqualFold applies the EqualFold predicate on the "rarity" field.
func RarityEqualFold(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldEqualFold(FieldRarity, v))
}

// RarityContainsFold applies the ContainsFold predicate on the "rarity" field.
func RarityContainsFold(v string) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldContainsFold(FieldRarity, v))
}

// UnlockedAtEQ applies the EQ predicate on the "unlocked_at" field.
func UnlockedAtEQ(v time.Time) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldEQ(FieldUnlockedAt, v))
}

// UnlockedAtNEQ applies the NEQ predicate on the "unlocked_at" field.
func UnlockedAtNEQ(v time.Time) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldNEQ(FieldUnlockedAt, v))
}

// UnlockedAtIn applies the In predicate on the "unlocked_at" field.
func UnlockedAtIn(vs ...time.Time) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldIn(FieldUnlockedAt, vs...))
}

// UnlockedAtNotIn applies the NotIn predicate on the "unlocked_at" field.
func UnlockedAtNotIn(vs ...time.Time) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldNotIn(FieldUnlockedAt, vs...))
}

// UnlockedAtGT applies the GT predicate on the "unlocked_at" field.
func UnlockedAtGT(v time.Time) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldGT(FieldUnlockedAt, v))
}

// UnlockedAtGTE applies the GTE predicate on the "unlocked_at" field.
func UnlockedAtGTE(v time.Time) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldGTE(FieldUnlockedAt, v))
}

// UnlockedAtLT applies the LT predicate on the "unlocked_at" field.
func UnlockedAtLT(v time.Time) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldLT(FieldUnlockedAt, v))
}

// UnlockedAtLTE applies the LTE predicate on the "unlocked_at" field.
func UnlockedAtLTE(v time.Time) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.FieldLTE(FieldUnlockedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AchievementUnlock) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AchievementUnlock) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AchievementUnlock) predicate.AchievementUnlock {
	return predicate.AchievementUnlock(sql.NotPredicates(p))
}
