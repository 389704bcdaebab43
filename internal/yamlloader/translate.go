// Translation from the YAML document structs into the format-agnostic
// configuration model.

package yamlloader

import (
	"github.com/vk/jvmtune/internal/config"
)

func translateProgram(s *yamlProgram) *config.ProgramConfig {
	p := &config.ProgramConfig{
		User:                 s.User,
		NumberOfSubjects:     s.NumberOfSubjects,
		SubjectWarmupTimeout: s.SubjectWarmupTimeout,
		ExpSettingsFilesDir:  s.ExpSettingsFilesDir,
		JvmSearchRestriction: translateSearchSpace(s.JvmSearchRestriction),
	}
	if s.Deprecated != nil {
		p.Deprecated = &config.DeprecatedMessageA{}
		if s.Deprecated.ValueA != nil {
			p.Deprecated.ValueA = *s.Deprecated.ValueA
		}
		if s.Deprecated.ValueB != nil {
			p.Deprecated.ValueB = *s.Deprecated.ValueB
		}
	}
	for _, c := range s.Clusters {
		p.Clusters = append(p.Clusters, translateCluster(c))
	}
	return p
}

func translateCluster(s *yamlCluster) *config.ClusterConfig {
	c := &config.ClusterConfig{
		Name:                    s.Name,
		User:                    s.User,
		NumberOfSubjects:        s.NumberOfSubjects,
		SubjectWarmupTimeout:    s.SubjectWarmupTimeout,
		NumberOfDefaultSubjects: s.NumberOfDefaultSubjects,
		RestartCommand:          s.RestartCommand,
		ExpSettingsFilesDir:     s.ExpSettingsFilesDir,
	}
	for _, g := range s.SubjectGroups {
		c.SubjectGroups = append(c.SubjectGroups, translateGroup(g))
	}
	return c
}

func translateGroup(s *yamlSubjectGroup) *config.SubjectGroupConfig {
	g := &config.SubjectGroupConfig{
		Name:                    s.Name,
		User:                    s.User,
		NumberOfSubjects:        s.NumberOfSubjects,
		NumberOfDefaultSubjects: s.NumberOfDefaultSubjects,
		SubjectWarmupTimeout:    s.SubjectWarmupTimeout,
		RestartCommand:          s.RestartCommand,
		ExpSettingsFilesDir:     s.ExpSettingsFilesDir,
	}
	for _, sub := range s.Subjects {
		g.Subjects = append(g.Subjects, &config.ExtendedSubjectConfig{
			SubjectIndex:  sub.SubjectIndex,
			JvmParameters: translateSearchSpace(sub.JvmParameters),
		})
	}
	return g
}

func translateSearchSpace(s *yamlSearchSpace) *config.JvmSearchSpace {
	if s == nil {
		return nil
	}
	out := &config.JvmSearchSpace{
		MinHeapSize: translateRange(s.MinHeapSize),
		MaxHeapSize: translateRange(s.MaxHeapSize),
		NewSize:     translateRange(s.NewSize),
		MaxNewSize:  translateRange(s.MaxNewSize),

		SurvivorRatio:        translateRange(s.SurvivorRatio),
		NewRatio:             translateRange(s.NewRatio),
		MaxTenuringThreshold: translateRange(s.MaxTenuringThreshold),
		MinHeapFreeRatio:     translateRange(s.MinHeapFreeRatio),
		MaxHeapFreeRatio:     translateRange(s.MaxHeapFreeRatio),

		ParallelGCThreads:              translateRange(s.ParallelGCThreads),
		ConcGCThreads:                  translateRange(s.ConcGCThreads),
		MaxGCPauseMillis:               translateRange(s.MaxGCPauseMillis),
		GCTimeRatio:                    translateRange(s.GCTimeRatio),
		InitiatingHeapOccupancyPercent: translateRange(s.InitiatingHeapOccupancyPercent),
		G1HeapRegionSize:               translateRange(s.G1HeapRegionSize),

		MetaspaceSize:         translateRange(s.MetaspaceSize),
		MaxMetaspaceSize:      translateRange(s.MaxMetaspaceSize),
		ReservedCodeCacheSize: translateRange(s.ReservedCodeCacheSize),
		ThreadStackSize:       translateRange(s.ThreadStackSize),
		TLABSize:              translateRange(s.TLABSize),

		UseCompressedOops:      s.UseCompressedOops,
		UseLargePages:          s.UseLargePages,
		UseTLAB:                s.UseTLAB,
		UseAdaptiveSizePolicy:  s.UseAdaptiveSizePolicy,
		UseStringDeduplication: s.UseStringDeduplication,
	}
	for _, mode := range s.GCModes {
		out.GCModes = append(out.GCModes, config.GCMode(mode))
	}
	return out
}

func translateRange(r *yamlRange) *config.Int64Range {
	if r == nil {
		return nil
	}
	return &config.Int64Range{
		Value:    r.Value,
		Floor:    r.Floor,
		Ceiling:  r.Ceiling,
		StepSize: r.StepSize,
	}
}
