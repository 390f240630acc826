package theme

// Conversation list icons.
var (
	IconUnread = AccentStyle.Render("●")
	IconRead   = MutedStyle.Render("○")
)

// Call placeholder icons.
const (
	IconCall        = "📞"
	IconParticipant = "👤"
)
