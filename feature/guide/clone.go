package guide

// Clone methods return copies sharing no memory with their receivers,
// so one aggregate can be rewritten without the other seeing it.

func cloneIDs(ids []uint32) []uint32 {
	if ids == nil {
		return nil
	}
	return append([]uint32(nil), ids...)
}

func cloneNamedIDs(entries []NamedID) []NamedID {
	if entries == nil {
		return nil
	}
	return append([]NamedID(nil), entries...)
}

func cloneID(id *uint32) *uint32 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func cloneSlice[T any](in []T, clone func(T) T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = clone(v)
	}
	return out
}

// Clone returns a deep copy of the item.
func (i Item) Clone() Item {
	out := i
	out.Element = cloneID(i.Element)
	out.Ability = cloneID(i.Ability)
	out.Causes = cloneIDs(i.Causes)
	out.Cures = cloneIDs(i.Cures)
	out.Gives = cloneIDs(i.Gives)
	out.Prevents = cloneIDs(i.Prevents)
	out.Materials = cloneIDs(i.Materials)
	return out
}

// Clone returns a deep copy of the monster.
func (m Monster) Clone() Monster {
	out := m
	out.Family = cloneID(m.Family)
	out.Spawns = cloneIDs(m.Spawns)
	out.WeakTo = cloneIDs(m.WeakTo)
	out.ResistantTo = cloneIDs(m.ResistantTo)
	out.ImmuneTo = cloneIDs(m.ImmuneTo)
	out.ImmuneToStatus = cloneIDs(m.ImmuneToStatus)
	out.Drops = cloneIDs(m.Drops)
	out.Skills = cloneIDs(m.Skills)
	return out
}

// Clone returns a deep copy of the skill.
func (s Skill) Clone() Skill {
	out := s
	out.Element = cloneID(s.Element)
	out.Causes = cloneIDs(s.Causes)
	out.Gives = cloneIDs(s.Gives)
	return out
}

// Clone returns a deep copy of the pet.
func (p Pet) Clone() Pet {
	out := p
	out.Events = cloneIDs(p.Events)
	out.Skills = cloneIDs(p.Skills)
	return out
}

// Clone returns a deep copy of the static enumerations.
func (s Static) Clone() Static {
	return Static{
		Spawns:          cloneNamedIDs(s.Spawns),
		ItemCategories:  cloneNamedIDs(s.ItemCategories),
		ItemTypes:       cloneNamedIDs(s.ItemTypes),
		MonsterFamilies: cloneNamedIDs(s.MonsterFamilies),
		StatusEffects:   cloneNamedIDs(s.StatusEffects),
		Elements:        cloneNamedIDs(s.Elements),
		EquippedBys:     cloneNamedIDs(s.EquippedBys),
		SkillTypes:      cloneNamedIDs(s.SkillTypes),
	}
}

// Clone returns a deep copy of the whole guide dataset.
func (d *Data) Clone() Data {
	return Data{
		Items:    Items{Items: cloneSlice(d.Items.Items, Item.Clone)},
		Monsters: Monsters{Monsters: cloneSlice(d.Monsters.Monsters, Monster.Clone)},
		Skills:   Skills{Skills: cloneSlice(d.Skills.Skills, Skill.Clone)},
		Pets:     Pets{Pets: cloneSlice(d.Pets.Pets, Pet.Clone)},
		Static:   d.Static.Clone(),
	}
}
