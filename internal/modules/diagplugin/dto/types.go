package dto

type PluginInfo struct {
	Name    string
	Version string
	Enabled bool
	Binary  string
	Systems []string
}

type DoctorResult struct {
	Name            string
	ChecksumValid   bool
	BinaryReachable bool
	LifecycleOK     bool
	Error           string
}

type DecodeOutput struct {
	Plugin             string
	Code               string
	Summary            string
	Description        string
	PossibleCauses     []string
	RecommendedActions []string
	Severity           string
}
