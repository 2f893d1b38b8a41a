package match

import (
	"context"
	"errors"
	"fmt"

	"ornasync/feature/codex"
	"ornasync/feature/guide"
	"ornasync/feature/snapshot"
)

// MatchSkills reconciles guide skills against codex skills. Passive
// skills have no codex page and are left out of the missing report.
func MatchSkills(ctx context.Context, snap *snapshot.Snapshot, fix bool, admin guide.AdminGuide, rep *Reporter) error {
	if err := listMissingSkills(ctx, snap, fix, admin, rep); err != nil {
		return err
	}
	return checkSkills(ctx, snap, fix, admin, rep)
}

func listMissingSkills(ctx context.Context, snap *snapshot.Snapshot, fix bool, admin guide.AdminGuide, rep *Reporter) error {
	var passiveID uint32
	if passive := snap.Guide.Static.FindSkillTypeByName("Passive"); passive != nil {
		passiveID = passive.ID
	}

	var missing []*codex.Skill
	for i := range snap.Codex.Skills.Skills {
		skill := &snap.Codex.Skills.Skills[i]
		_, err := snap.Guide.Skills.GetBySlug(skill.Slug)
		var notFound *guide.NotFoundError
		switch {
		case err == nil:
		case errors.As(err, &notFound):
			rep.MissingOnGuide("skills", skill.Name, skill.URI())
			missing = append(missing, skill)
		default:
			return err
		}
	}
	for i := range snap.Guide.Skills.Skills {
		skill := &snap.Guide.Skills.Skills[i]
		if skill.Type == passiveID || skill.CodexURI == "" {
			continue
		}
		if _, err := snap.Codex.Skills.GetByURI(skill.CodexURI); err != nil {
			rep.NotOnCodex("skills", skill.Name, skill.ID)
		}
	}
	if !fix || len(missing) == 0 {
		return nil
	}

	for _, skill := range missing {
		created := newSkillFromCodex(skill, &snap.Guide.Static)
		if err := admin.AddSkill(ctx, created); err != nil {
			return fmt.Errorf("failed to add skill %q: %w", skill.Name, err)
		}
	}
	entries, err := guide.RetryOnce(func() ([]guide.Entry, error) { return admin.ListSkills(ctx) })
	if err != nil {
		return fmt.Errorf("failed to re-list skills: %w", err)
	}
	for _, entry := range entries {
		if snap.Guide.Skills.FindByID(entry.ID) != nil {
			continue
		}
		skill, err := guide.RetryOnce(func() (*guide.Skill, error) { return admin.FetchSkill(ctx, entry.ID) })
		if err != nil {
			return fmt.Errorf("failed to fetch new skill #%d: %w", entry.ID, err)
		}
		snap.Guide.Skills.Skills = append(snap.Guide.Skills.Skills, *skill)
	}
	return nil
}

func checkSkills(ctx context.Context, snap *snapshot.Snapshot, fix bool, admin guide.AdminGuide, rep *Reporter) error {
	for i := range snap.Codex.Skills.Skills {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		codexSkill := &snap.Codex.Skills.Skills[i]
		guideSkill, err := snap.Guide.Skills.GetBySlug(codexSkill.Slug)
		var notFound *guide.NotFoundError
		if errors.As(err, &notFound) {
			continue
		}
		if err != nil {
			return err
		}
		if err := checkSkill(ctx, snap, fix, admin, rep, codexSkill, guideSkill); err != nil {
			var ambiguous *guide.AmbiguousMatchError
			if errors.As(err, &ambiguous) {
				return err
			}
			rep.FixFailed("skills", guideSkill.Name, guideSkill.ID, err)
		}
	}
	return nil
}

func checkSkill(ctx context.Context, snap *snapshot.Snapshot, fix bool, admin guide.AdminGuide, rep *Reporter, codexSkill *codex.Skill, guideSkill *guide.Skill) error {
	static := &snap.Guide.Static
	check := &Checker[guide.Skill]{
		Kind:   "skills",
		Name:   guideSkill.Name,
		ID:     guideSkill.ID,
		Fix:    fix,
		Fetch:  admin.FetchSkill,
		Save:   admin.SaveSkill,
		Report: rep,
	}

	if _, err := CheckScalar(ctx, check, "description", guideSkill.Description, orDot(codexSkill.Description),
		func(skill *guide.Skill, description string) { skill.Description = description }); err != nil {
		return err
	}
	if _, err := CheckScalar(ctx, check, "tier", guideSkill.Tier, codexSkill.Tier,
		func(skill *guide.Skill, tier int) { skill.Tier = tier }); err != nil {
		return err
	}
	if _, err := CheckScalar(ctx, check, "bought", guideSkill.Bought, codexSkill.BoughtAtArcanist(),
		func(skill *guide.Skill, bought bool) { skill.Bought = bought }); err != nil {
		return err
	}

	effectLists := []struct {
		field string
		guide []uint32
		names []string
		list  func(*guide.Skill) *[]uint32
	}{
		{"causes", guideSkill.Causes, skillEffectNames(codexSkill.Causes),
			func(skill *guide.Skill) *[]uint32 { return &skill.Causes }},
		{"gives", guideSkill.Gives, skillEffectNames(codexSkill.Gives),
			func(skill *guide.Skill) *[]uint32 { return &skill.Gives }},
	}
	for _, ef := range effectLists {
		expected, err := ResolveEffectIDs(ef.names, static)
		var partial *PartialResolutionError
		if errors.As(err, &partial) {
			rep.PartialResolution("skills", guideSkill.Name, ef.field, partial)
		} else if err != nil {
			return err
		}
		if _, err := CheckIDList(ctx, check, ef.field,
			sortedUnique(ef.guide), sortedUnique(expected),
			statusName(static), ef.list); err != nil {
			return err
		}
	}
	return nil
}
