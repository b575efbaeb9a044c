package utils

const (
	RootDir     = "/etc/solverd"
	StoreDir    = "/etc/solverd/store"
	AuditLogDir = "/etc/solverd/log/"

	DictSnapshotPath = "/etc/solverd/store/dict.json"
	DefaultDictPath  = "/etc/solverd/words.txt"
	ConfigPath       = "/etc/solverd/config.yaml"
)
