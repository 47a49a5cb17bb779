// internal/types/types.go
package types

// EntityID — уникальный идентификатор сущности в рамках одной игровой сессии.
// Выдаётся монотонным счётчиком ECS.NewEntity, поэтому важны только
// уникальность и сравнение на равенство.
type EntityID uint64
