package config

const (
	defaultStateDir          = "~/.local/share/curator"
	defaultLogDir            = "~/.local/share/curator/logs"
	defaultMergeLeftCSV      = "image_metadata.csv"
	defaultMergeRightCSV     = "artifact_annotations.csv"
	defaultMergeOutputCSV    = "images_artifacts.csv"
	defaultMergePreviewRows  = 5
	defaultCleanupOutputCSV  = "images_artifacts_final.csv"
	defaultCleanupMatch      = "fake_or_real"
	defaultOrganizeImageDir  = "stimuli"
	defaultOrganizeOutputDir = "images_real_fake"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// DefaultNAMarkers lists the cell values the merge stage treats as missing.
var DefaultNAMarkers = []string{
	"#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None",
	"n/a", "nan", "null",
}

// DefaultArtifactColumns lists the per-category artifact flags used when
// renaming organized images.
var DefaultArtifactColumns = []string{
	"anatomical", "stylistic", "functional", "law_of_physics", "sociocultural",
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir,
			LogDir:   defaultLogDir,
		},
		Merge: Merge{
			LeftCSV:     defaultMergeLeftCSV,
			RightCSV:    defaultMergeRightCSV,
			OutputCSV:   defaultMergeOutputCSV,
			NAMarkers:   append([]string(nil), DefaultNAMarkers...),
			PreviewRows: defaultMergePreviewRows,
		},
		Cleanup: Cleanup{
			InputCSV:    defaultMergeOutputCSV,
			OutputCSV:   defaultCleanupOutputCSV,
			MatchColumn: defaultCleanupMatch,
		},
		Organize: Organize{
			CSV:             defaultCleanupOutputCSV,
			ImageDir:        defaultOrganizeImageDir,
			OutputDir:       defaultOrganizeOutputDir,
			ArtifactColumns: append([]string(nil), DefaultArtifactColumns...),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
