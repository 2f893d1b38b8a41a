package match

import (
	"context"
	"errors"

	"ornasync/feature/codex"
	"ornasync/feature/guide"
	"ornasync/feature/snapshot"
)

// MatchPets reconciles guide pets against codex followers. Pet creation
// is manual on the guide, so missing entities are reported, never added.
func MatchPets(ctx context.Context, snap *snapshot.Snapshot, fix bool, admin guide.AdminGuide, rep *Reporter) error {
	if err := listMissingPets(snap, rep); err != nil {
		return err
	}
	return checkPets(ctx, snap, fix, admin, rep)
}

func listMissingPets(snap *snapshot.Snapshot, rep *Reporter) error {
	for i := range snap.Codex.Followers.Followers {
		follower := &snap.Codex.Followers.Followers[i]
		_, err := snap.Guide.Pets.GetBySlug(follower.Slug)
		var notFound *guide.NotFoundError
		switch {
		case err == nil:
		case errors.As(err, &notFound):
			rep.MissingOnGuide("pets", follower.Name, follower.URI())
		default:
			return err
		}
	}
	for i := range snap.Guide.Pets.Pets {
		pet := &snap.Guide.Pets.Pets[i]
		if pet.CodexURI == "" {
			continue
		}
		if _, err := snap.Codex.Followers.GetByURI(pet.CodexURI); err != nil {
			rep.NotOnCodex("pets", pet.Name, pet.ID)
		}
	}
	return nil
}

func checkPets(ctx context.Context, snap *snapshot.Snapshot, fix bool, admin guide.AdminGuide, rep *Reporter) error {
	for i := range snap.Codex.Followers.Followers {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		follower := &snap.Codex.Followers.Followers[i]
		pet, err := snap.Guide.Pets.GetBySlug(follower.Slug)
		var notFound *guide.NotFoundError
		if errors.As(err, &notFound) {
			continue
		}
		if err != nil {
			return err
		}
		if err := checkPet(ctx, snap, fix, admin, rep, follower, pet); err != nil {
			var ambiguous *guide.AmbiguousMatchError
			if errors.As(err, &ambiguous) {
				return err
			}
			rep.FixFailed("pets", pet.Name, pet.ID, err)
		}
	}
	return nil
}

func checkPet(ctx context.Context, snap *snapshot.Snapshot, fix bool, admin guide.AdminGuide, rep *Reporter, follower *codex.Follower, pet *guide.Pet) error {
	check := &Checker[guide.Pet]{
		Kind:   "pets",
		Name:   pet.Name,
		ID:     pet.ID,
		Fix:    fix,
		Fetch:  admin.FetchPet,
		Save:   admin.SavePet,
		Report: rep,
	}

	if _, err := CheckScalar(ctx, check, "name", pet.Name, follower.Name,
		func(pet *guide.Pet, name string) { pet.Name = name }); err != nil {
		return err
	}
	if _, err := CheckScalar(ctx, check, "image_name", pet.ImageName, follower.Icon,
		func(pet *guide.Pet, image string) { pet.ImageName = image }); err != nil {
		return err
	}
	if _, err := CheckScalar(ctx, check, "description", pet.Description, orDot(follower.Description),
		func(pet *guide.Pet, description string) { pet.Description = description }); err != nil {
		return err
	}
	if _, err := CheckScalar(ctx, check, "tier", pet.Tier, follower.Tier,
		func(pet *guide.Pet, tier int) { pet.Tier = tier }); err != nil {
		return err
	}

	// Skills without a codex page are invisible to the codex and
	// excluded from the comparison so they survive fixes.
	var petSkills []uint32
	for _, id := range pet.Skills {
		if skill := snap.Guide.Skills.FindByID(id); skill != nil && skill.CodexURI != "" {
			petSkills = append(petSkills, id)
		}
	}
	expected, err := ResolveAbilityIDs(follower.Abilities, &snap.Guide.Skills)
	var partial *PartialResolutionError
	if errors.As(err, &partial) {
		rep.PartialResolution("pets", pet.Name, "abilities", partial)
	} else if err != nil {
		return err
	}
	_, err = CheckIDList(ctx, check, "abilities",
		sortedUnique(petSkills), sortedUnique(expected),
		skillName(&snap.Guide.Skills), func(pet *guide.Pet) *[]uint32 { return &pet.Skills })
	return err
}
