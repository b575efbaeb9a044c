package logger

type Logger interface {
	Write(event Event)
}

type Event struct {
	TS            string `json:"ts"`
	EventId       string `json:"event_id"`
	CorrelationId string `json:"correlation_id,omitempty"`
	Severity      string `json:"severity"`

	Actor Actor `json:"actor"`

	Action string `json:"action,omitempty"`
	Target Target `json:"target,omitempty"`

	Request Request `json:"request"`
	Result  Result  `json:"result"`

	Runtime Runtime `json:"runtime"`

	Extra map[string]any `json:"extra,omitempty"`
}

type Actor struct {
	UserId int    `json:"user_id,omitempty"`
	PeerIp string `json:"peer_ip,omitempty"`
}

type Target struct {
	// user
	UserId   int    `json:"target_user_id,omitempty"`
	Username string `json:"username,omitempty"`

	// solve
	Exact     string `json:"exact,omitempty"`
	Correct   string `json:"correct,omitempty"`
	Incorrect string `json:"incorrect,omitempty"`
	WordCount int    `json:"word_count,omitempty"`
	Cached    bool   `json:"cached,omitempty"`
}

type Request struct {
	Method string `json:"method"`
	Path   string `json:"path"`
	Host   string `json:"host,omitempty"`
}

type Result struct {
	Status    string `json:"status"`
	Code      int    `json:"code"`
	Reason    string `json:"reason,omitempty"`
	Bytes     int    `json:"bytes,omitempty"`
	LatencyMs int64  `json:"latency_ms,omitempty"`
}

type Runtime struct {
	Component string `json:"component,omitempty"`
	Node      string `json:"node,omitempty"`
}

type ctxKey int

var Severity = map[int]string{
	0: "information",
	1: "low",
	2: "medium",
	3: "high",
	4: "critical",
}

const (
	SEV_INFO     = 0
	SEV_LOW      = 1
	SEV_MEDIUM   = 2
	SEV_HIGH     = 3
	SEV_CRITICAL = 4
)

type Rule struct {
	Method   string
	Pattern  string
	Action   string
	Severity int
}

var rules = []Rule{
	// users
	{"POST", "/v1/users/register", "user.register", SEV_MEDIUM},
	{"GET", "/v1/users", "user.list", SEV_INFO},
	{"GET", "/v1/users/{userId}", "user.info", SEV_INFO},
	{"PUT", "/v1/users/{userId}", "user.update", SEV_MEDIUM},
	{"DELETE", "/v1/users/{userId}", "user.delete", SEV_HIGH},
	{"POST", "/v1/users/login", "user.login", SEV_MEDIUM},
	{"POST", "/v1/users/revoke", "user.revoke", SEV_HIGH},

	// game
	{"POST", "/v1/game/general-letters", "game.solve", SEV_INFO},
	{"GET", "/v1/game/live", "game.live", SEV_INFO},

	// view
	{"GET", "/answers", "view.answers", SEV_INFO},

	// health
	{"GET", "/v1/health", "health.check", SEV_INFO},
}

var actionSeverity = map[string]int{
	"user.login.failed": SEV_HIGH,
	"game.solve.cached": SEV_INFO,
}
