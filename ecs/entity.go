package ecs

import "strconv"

// Entity packs a generation in the high 32 bits and an id in the low 32.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e.id()), 10) + "v" + strconv.FormatUint(uint64(e.generation()), 10)
}

func (e Entity) Valid() bool {
	return e.id() > 0
}

// Raw returns the handle as stored in components that reference entities.
func (e Entity) Raw() uint64 {
	return uint64(e)
}

// EntityFromRaw is the inverse of Raw.
func EntityFromRaw(raw uint64) Entity {
	return Entity(raw)
}
