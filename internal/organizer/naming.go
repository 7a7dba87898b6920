package organizer

import (
	"curator/internal/dataset"
	"curator/internal/textutil"
)

// Partition is an output subfolder.
type Partition string

const (
	PartitionReal Partition = "real"
	PartitionFake Partition = "fake"
)

const columnGenerator = "generator"

// PartitionFor maps a coerced fake indicator to its output folder. Only an
// indicator of exactly 1 is fake.
func PartitionFor(fake float64) Partition {
	if fake == 1 {
		return PartitionFake
	}
	return PartitionReal
}

// TargetName returns the file name used inside the partition folder. Without
// rename it is the row's filename; with rename it is the underscore-joined
// label, generator, active artifact flags, and filename, skipping empty parts.
func TargetName(rec dataset.Record, partition Partition, rename bool, artifactColumns []string) string {
	filename, _ := rec.Get(dataset.ColumnFilename)
	if !rename {
		return filename
	}
	generator, _ := rec.Get(columnGenerator)
	return textutil.JoinNonEmpty("_",
		string(partition),
		textutil.SanitizeFileName(generator),
		activeArtifacts(rec, artifactColumns),
		filename,
	)
}

func activeArtifacts(rec dataset.Record, columns []string) string {
	active := make([]string, 0, len(columns))
	for _, col := range columns {
		if value, ok := rec.Get(col); ok && textutil.IsTruthy(value) {
			active = append(active, col)
		}
	}
	return textutil.JoinNonEmpty("_", active...)
}
