package resolver

import (
	"context"
	"fmt"

	"github.com/vk/jvmtune/internal/config"
	"github.com/vk/jvmtune/internal/ctxlog"
	"github.com/vk/jvmtune/internal/searchspace"
)

// Resolve walks the program tree and emits one ResolvedSubjectConfig per
// active subject, in cluster/group/subject declaration order. All
// validation happens eagerly; the first failure aborts the whole call.
// Calling Resolve twice on the same tree produces identical output.
func Resolve(ctx context.Context, program *config.ProgramConfig, opts Options) ([]ResolvedSubjectConfig, error) {
	logger := ctxlog.FromContext(ctx)

	if program == nil || len(program.Clusters) == 0 {
		return nil, scopeErr(ScopePath{Subject: -1}, fmt.Errorf("%w: no clusters defined", ErrEmptyConfiguration))
	}

	// The program-level restriction is shared by every experimental
	// subject without its own specification; validate it once up front.
	if err := searchspace.ValidateSpace(program.JvmSearchRestriction, false); err != nil {
		return nil, scopeErr(ScopePath{Subject: -1, Field: "jvm_search_restriction"}, err)
	}

	var resolved []ResolvedSubjectConfig
	for _, cluster := range program.Clusters {
		if len(cluster.SubjectGroups) == 0 {
			return nil, scopeErr(ScopePath{Cluster: cluster.Name, Subject: -1},
				fmt.Errorf("%w: no subject groups defined", ErrEmptyConfiguration))
		}
		for _, group := range cluster.SubjectGroups {
			records, err := resolveGroup(program, cluster, group, opts)
			if err != nil {
				return nil, err
			}
			resolved = append(resolved, records...)
		}
	}

	logger.Debug("Configuration resolved.",
		"clusters", len(program.Clusters), "subjects", len(resolved))
	return resolved, nil
}

// resolveGroup computes the effective scalar values for one subject
// group and emits its per-subject records.
func resolveGroup(program *config.ProgramConfig, cluster *config.ClusterConfig, group *config.SubjectGroupConfig, opts Options) ([]ResolvedSubjectConfig, error) {
	path := ScopePath{Cluster: cluster.Name, Group: group.Name, Subject: -1}

	// Innermost-wins scalar resolution. Counts default to 0 and warmup
	// to 300s; user has no default and must be set somewhere.
	user := override(group.User, cluster.User, program.User)
	if user == nil {
		p := path
		p.Field = "user"
		return nil, scopeErr(p, fmt.Errorf("%w: %q", ErrMissingRequiredField, "user"))
	}

	warmup := overrideOr(config.DefaultSubjectWarmupTimeout,
		group.SubjectWarmupTimeout, cluster.SubjectWarmupTimeout, program.SubjectWarmupTimeout)

	declared := overrideOr(0, group.NumberOfSubjects, cluster.NumberOfSubjects, program.NumberOfSubjects)
	if declared < 0 {
		p := path
		p.Field = "number_of_subjects"
		return nil, scopeErr(p, fmt.Errorf("%w: %d", ErrNegativeCount, declared))
	}

	numDefault := overrideOr(0, group.NumberOfDefaultSubjects, cluster.NumberOfDefaultSubjects)
	if numDefault < 0 {
		p := path
		p.Field = "number_of_default_subjects"
		return nil, scopeErr(p, fmt.Errorf("%w: %d", ErrNegativeCount, numDefault))
	}

	restartCommand := overrideOr("", group.RestartCommand, cluster.RestartCommand)
	settingsDir := overrideOr("", group.ExpSettingsFilesDir, cluster.ExpSettingsFilesDir, program.ExpSettingsFilesDir)

	active, err := activeSubjectCount(declared, group, opts, path)
	if err != nil {
		return nil, err
	}

	if numDefault > active {
		p := path
		p.Field = "number_of_default_subjects"
		return nil, scopeErr(p, fmt.Errorf("%w: %d > %d", ErrInvalidDefaultSubjectCount, numDefault, active))
	}

	overrides, err := subjectOverrides(declared, active, group, path)
	if err != nil {
		return nil, err
	}

	records := make([]ResolvedSubjectConfig, 0, active)
	for idx := int64(0); idx < active; idx++ {
		record := ResolvedSubjectConfig{
			Cluster:              cluster.Name,
			SubjectGroupName:     group.Name,
			SubjectIndex:         idx,
			User:                 *user,
			NumberOfSubjects:     active,
			SubjectWarmupTimeout: warmup,
			IsBaseline:           idx < numDefault,
			RestartCommand:       restartCommand,
			ExpSettingsFilesDir:  settingsDir,
		}

		// Baseline subjects run fixed settings and get no search space.
		if !record.IsBaseline {
			space, err := subjectSearchSpace(program, overrides[idx], path, idx)
			if err != nil {
				return nil, err
			}
			record.SearchSpace = space
		}

		records = append(records, record)
	}
	return records, nil
}

// activeSubjectCount decides how many subjects of the group take part.
// A declared count wins; a declared count of 0 means the fleet size is
// defined externally, falling back to the explicit subject list when no
// external count was supplied.
func activeSubjectCount(declared int64, group *config.SubjectGroupConfig, opts Options, path ScopePath) (int64, error) {
	if declared > 0 {
		return declared, nil
	}
	if external, ok := opts.ExternalSubjectCounts[ExternalCountKey(path.Cluster, path.Group)]; ok {
		if external < 0 {
			p := path
			p.Field = "number_of_subjects"
			return 0, scopeErr(p, fmt.Errorf("%w: external count %d", ErrNegativeCount, external))
		}
		return external, nil
	}
	if n := int64(len(group.Subjects)); n > 0 {
		return n, nil
	}
	p := path
	p.Field = "number_of_subjects"
	return 0, scopeErr(p, ErrUnknownSubjectCount)
}

// subjectOverrides keys the group's explicit subject entries by the slot
// they apply to. Entries apply positionally unless they pin themselves
// with subject_index. With a declared count, only the first
// min(declared, len(entries)) entries are considered.
func subjectOverrides(declared, active int64, group *config.SubjectGroupConfig, path ScopePath) (map[int64]*config.ExtendedSubjectConfig, error) {
	entries := group.Subjects
	if declared > 0 && int64(len(entries)) > declared {
		entries = entries[:declared]
	}

	overrides := make(map[int64]*config.ExtendedSubjectConfig, len(entries))
	for pos, entry := range entries {
		idx := int64(pos)
		if entry.SubjectIndex != nil {
			idx = *entry.SubjectIndex
		}
		p := path
		p.Subject = idx
		p.Field = "subject_index"
		if idx < 0 || idx >= active {
			return nil, scopeErr(p, fmt.Errorf("%w: %d (active subjects: %d)", ErrSubjectIndexOutOfRange, idx, active))
		}
		if _, dup := overrides[idx]; dup {
			return nil, scopeErr(p, fmt.Errorf("%w: %d", ErrDuplicateSubjectIndex, idx))
		}
		overrides[idx] = entry
	}
	return overrides, nil
}

// subjectSearchSpace picks the search space for one experimental
// subject. A subject-level jvm_parameters block is a complete record
// that replaces the program restriction outright; otherwise the subject
// inherits the restriction. Either way the result is a deep copy.
func subjectSearchSpace(program *config.ProgramConfig, entry *config.ExtendedSubjectConfig, path ScopePath, idx int64) (*config.JvmSearchSpace, error) {
	if entry != nil && entry.JvmParameters != nil {
		if err := searchspace.ValidateSpace(entry.JvmParameters, true); err != nil {
			p := path
			p.Subject = idx
			p.Field = "jvm_parameters"
			return nil, scopeErr(p, err)
		}
		return entry.JvmParameters.Clone(), nil
	}
	return program.JvmSearchRestriction.Clone(), nil
}
