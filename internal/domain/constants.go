package domain

// Типы сущностей (для снимков)
const (
	EntityTypePlayer      = "PLAYER"
	EntityTypeEnemy       = "ENEMY"
	EntityTypeWall        = "WALL"
	EntityTypeCollectible = "COLLECTIBLE"
)
