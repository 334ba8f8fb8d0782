package common

const (
	KEY_THEME_SESSION = "theme:%s"
	KEY_CHAT_SESSION  = "chat:%s"
)

const (
	CONTEXT_KEY_SESSION_ID = "session_id"
)

const (
	BILLING_MONTHLY = "monthly"
	BILLING_YEARLY  = "yearly"
)

func GetBillingCycles() []string {
	return []string{
		BILLING_MONTHLY,
		BILLING_YEARLY,
	}
}
