package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	deliveryService "github.com/reshetovitsme/channel-mirror/internal/modules/delivery/service"
	identity "github.com/reshetovitsme/channel-mirror/internal/modules/identity/domain"
	operatorService "github.com/reshetovitsme/channel-mirror/internal/modules/operator/service"
	promptDomain "github.com/reshetovitsme/channel-mirror/internal/modules/prompt/domain"
	promptService "github.com/reshetovitsme/channel-mirror/internal/modules/prompt/service"
	settingsDomain "github.com/reshetovitsme/channel-mirror/internal/modules/settings/domain"
	settingsService "github.com/reshetovitsme/channel-mirror/internal/modules/settings/service"
	"github.com/reshetovitsme/channel-mirror/internal/shared/config"
	"github.com/samber/lo"
)

type command struct {
	name  string
	usage string
	help  string
	// prompt is asked when the command arrives without an argument
	prompt promptDomain.Action
	// bare commands run without an argument
	bare bool
	run  func(ctx context.Context, arg string) (string, error)
}

// Handler is the operator control surface
type Handler struct {
	cfg       *config.Config
	settings  *settingsService.Service
	operators *operatorService.Service
	prompts   *promptService.Store
	stats     *deliveryService.Stats

	commands map[string]*command
	ordered  []*command
	byAction map[promptDomain.Action]*command
}

// New creates a new control handler
func New(cfg *config.Config, settings *settingsService.Service, operators *operatorService.Service, prompts *promptService.Store, stats *deliveryService.Stats) *Handler {
	h := &Handler{
		cfg:       cfg,
		settings:  settings,
		operators: operators,
		prompts:   prompts,
		stats:     stats,
		commands:  map[string]*command{},
		byAction:  map[promptDomain.Action]*command{},
	}
	h.registerCommands()
	return h
}

func (h *Handler) registerCommands() {
	for _, c := range []*command{
		{name: "help", help: "show this help", bare: true, run: func(context.Context, string) (string, error) { return h.helpText(), nil }},
		{name: "settings", help: "show the current configuration", bare: true, run: h.renderSettings},
		{name: "status", help: "show forwarding state and delivery counters", bare: true, run: h.renderStatus},
		{name: "on", help: "enable forwarding", bare: true, run: h.forwarding(true)},
		{name: "off", help: "disable forwarding", bare: true, run: h.forwarding(false)},
		{name: "editsync", usage: "[on|off]", help: "mirror edits of source posts", bare: true, run: h.syncSwitch("Edit sync", h.settings.SetEditSync, func(f *settingsDomain.ForwardingStatus) bool { return f.EditSync })},
		{name: "deletesync", usage: "[on|off]", help: "mirror deletions of source posts", bare: true, run: h.syncSwitch("Delete sync", h.settings.SetDeleteSync, func(f *settingsDomain.ForwardingStatus) bool { return f.DeleteSync })},
		{name: "reset", help: "clear routing and replacements", bare: true, run: h.reset},
		{name: "addsource", usage: "<channel>", help: "add a broadcast source", prompt: promptDomain.ActionAddSource, run: h.editRefs("source", true, h.settings.AddSource)},
		{name: "removesource", usage: "<channel>", help: "remove a broadcast source", prompt: promptDomain.ActionRemoveSource, run: h.editRefs("source", false, h.settings.RemoveSource)},
		{name: "addtarget", usage: "<channel>", help: "add a broadcast target", prompt: promptDomain.ActionAddTarget, run: h.editRefs("target", true, h.settings.AddTarget)},
		{name: "removetarget", usage: "<channel>", help: "remove a broadcast target", prompt: promptDomain.ActionRemoveTarget, run: h.editRefs("target", false, h.settings.RemoveTarget)},
		{name: "addroute", usage: "<source> <target> [target...]", help: "route one source to specific targets", run: h.addRoute},
		{name: "removeroute", usage: "<source>", help: "drop the route of a source", run: h.removeRoute},
		{name: "editword", usage: "<from|to>", help: "replace a word", prompt: promptDomain.ActionEditWord, run: h.upsertReplacement(settingsDomain.NamespaceWords)},
		{name: "editlink", usage: "<from|to>", help: "replace a link", prompt: promptDomain.ActionEditLink, run: h.upsertReplacement(settingsDomain.NamespaceLinks)},
		{name: "editmention", usage: "<from|to>", help: "replace a mention", prompt: promptDomain.ActionEditMention, run: h.upsertReplacement(settingsDomain.NamespaceMentions)},
		{name: "removereplacement", usage: "<words|links|mentions> <from>", help: "drop a replacement", run: h.removeReplacement},
		{name: "blacklist", usage: "<word, word...|->", help: "set blacklisted words (- clears)", prompt: promptDomain.ActionBlacklistWords, run: h.setBlacklist},
		{name: "blacklistmode", usage: "<strip|reject>", help: "strip blacklisted words or reject the message", run: h.setBlacklistMode},
		{name: "toggle", usage: "<text|image|video|link|mentions|blacklist>", help: "toggle a content filter", run: h.toggle},
		{name: "resolve", usage: "<channel>", help: "look up the numeric ID of a channel", run: h.resolve},
		{name: "alias", usage: "<channel> <id>", help: "link an invite link or handle to a numeric ID", run: h.alias},
		{name: "rsslink", usage: "<target>", help: "RSS feed of posts mirrored to a target", run: h.rssLink},
		{name: "cancel", help: "abandon a pending prompt", bare: true},
	} {
		h.commands[c.name] = c
		h.ordered = append(h.ordered, c)
		if c.prompt != "" {
			h.byAction[c.prompt] = c
		}
	}
}

// HandleUpdate processes private messages from operators
func (h *Handler) HandleUpdate(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil || msg.Chat.Type != models.ChatTypePrivate {
		return
	}
	h.send(ctx, b, msg.Chat.ID, h.Execute(ctx, msg.From.ID, msg.From.Username, msg.Text))
}

func (h *Handler) send(ctx context.Context, b *bot.Bot, chatID int64, reply string) {
	if reply == "" {
		return
	}
	if _, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   reply,
	}); err != nil {
		slog.Error("Failed to send reply", "error", err, "chat_id", chatID)
	}
}

// Execute interprets one operator message. Errors become replies; nothing here
// can stop the worker.
func (h *Handler) Execute(ctx context.Context, userID int64, username, text string) string {
	name, arg, isCommand := parseCommand(text)

	if isCommand && name == "start" {
		ok, err := h.operators.Claim(userID, username)
		if err != nil {
			slog.Error("Failed to register operator", "error", err, "user_id", userID)
			return "❌ " + err.Error()
		}
		if !ok {
			return "❌ You are not authorized to use this bot."
		}
		return h.welcomeText()
	}

	if !h.operators.IsAuthorized(userID) {
		if isCommand {
			return "❌ Unauthorized"
		}
		return ""
	}

	if !isCommand {
		return h.answerPrompt(ctx, userID, strings.TrimSpace(text))
	}

	// a new command abandons any pending prompt
	h.prompts.Cancel(userID)

	cmd, ok := h.commands[name]
	if !ok {
		return fmt.Sprintf("❓ Unknown command /%s, see /help", name)
	}
	if cmd.name == "cancel" {
		return "👌 Cancelled."
	}
	if arg == "" && !cmd.bare {
		if cmd.prompt != "" {
			h.prompts.Set(userID, cmd.prompt)
			return cmd.prompt.Prompt()
		}
		return fmt.Sprintf("Usage: /%s %s", cmd.name, cmd.usage)
	}

	return h.run(ctx, cmd, arg)
}

func (h *Handler) answerPrompt(ctx context.Context, userID int64, text string) string {
	action, ok := h.prompts.Take(userID)
	if !ok {
		return "Send /help for the list of commands."
	}
	cmd, ok := h.byAction[action]
	if !ok {
		return action.Prompt()
	}
	if text == "" {
		// still waiting for an answer
		h.prompts.Set(userID, action)
		return action.Prompt()
	}
	return h.run(ctx, cmd, text)
}

func (h *Handler) run(ctx context.Context, cmd *command, arg string) string {
	out, err := cmd.run(ctx, arg)
	if err != nil {
		slog.Warn("Control command failed", "command", cmd.name, "error", err)
		return "❌ " + err.Error()
	}
	return out
}

// parseCommand splits "/cmd@bot arg..." into its name and argument
func parseCommand(text string) (string, string, bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", "", false
	}
	head, arg, _ := strings.Cut(text[1:], " ")
	name, _, _ := strings.Cut(head, "@")
	if name == "" {
		return "", "", false
	}
	return strings.ToLower(name), strings.TrimSpace(arg), true
}

func (h *Handler) forwarding(enabled bool) func(context.Context, string) (string, error) {
	return func(context.Context, string) (string, error) {
		if err := h.settings.SetForwarding(enabled); err != nil {
			return "", err
		}
		if enabled {
			return "▶️ Forwarding enabled.", nil
		}
		return "⏹️ Forwarding disabled.", nil
	}
}

func (h *Handler) syncSwitch(label string, set func(bool) error, current func(*settingsDomain.ForwardingStatus) bool) func(context.Context, string) (string, error) {
	return func(_ context.Context, arg string) (string, error) {
		var enabled bool
		switch strings.ToLower(arg) {
		case "on":
			enabled = true
		case "off":
			enabled = false
		case "":
			status, err := h.settings.Forwarding()
			if err != nil {
				return "", err
			}
			enabled = !current(status)
		default:
			return "", fmt.Errorf("expected on or off, got %q", arg)
		}
		if err := set(enabled); err != nil {
			return "", err
		}
		return fmt.Sprintf("%s: %s", label, onOff(enabled)), nil
	}
}

func (h *Handler) reset(context.Context, string) (string, error) {
	if err := h.settings.ResetAll(); err != nil {
		return "", err
	}
	return "♻️ Routing and replacements reset.", nil
}

func (h *Handler) editRefs(kind string, add bool, edit func(string) (string, bool, error)) func(context.Context, string) (string, error) {
	return func(_ context.Context, arg string) (string, error) {
		key, changed, err := edit(arg)
		if err != nil {
			return "", err
		}
		switch {
		case add && changed:
			return fmt.Sprintf("✅ Added %s: %s", kind, key), nil
		case add:
			return fmt.Sprintf("ℹ️ Already a %s: %s", kind, key), nil
		case changed:
			return fmt.Sprintf("❌ Removed %s: %s", kind, key), nil
		default:
			return fmt.Sprintf("ℹ️ Not a %s: %s", kind, key), nil
		}
	}
}

func (h *Handler) addRoute(_ context.Context, arg string) (string, error) {
	fields := strings.Fields(arg)
	if len(fields) < 2 {
		return "Usage: /addroute <source> <target> [target...]", nil
	}
	rule, err := h.settings.AddRoute(fields[0], fields[1:]...)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("✅ Route %s → %s", rule.Source, strings.Join(rule.Targets, ", ")), nil
}

func (h *Handler) removeRoute(_ context.Context, arg string) (string, error) {
	removed, err := h.settings.RemoveRoute(arg)
	if err != nil {
		return "", err
	}
	if !removed {
		return fmt.Sprintf("ℹ️ No route for %s", identity.Normalize(arg)), nil
	}
	return fmt.Sprintf("❌ Route of %s removed", identity.Normalize(arg)), nil
}

func (h *Handler) upsertReplacement(ns settingsDomain.Namespace) func(context.Context, string) (string, error) {
	return func(_ context.Context, arg string) (string, error) {
		from, to, err := promptDomain.ParsePair(arg)
		if err != nil {
			return "", err
		}
		if err := h.settings.UpsertReplacement(ns, from, to); err != nil {
			return "", err
		}
		return fmt.Sprintf("✅ Updated %s: %s → %s", ns, from, to), nil
	}
}

func (h *Handler) removeReplacement(_ context.Context, arg string) (string, error) {
	nsName, from, _ := strings.Cut(arg, " ")
	ns, err := settingsDomain.ParseNamespace(nsName)
	if err != nil {
		return "", err
	}
	from = strings.TrimSpace(from)
	if from == "" {
		return "Usage: /removereplacement <words|links|mentions> <from>", nil
	}
	removed, err := h.settings.RemoveReplacement(ns, from)
	if err != nil {
		return "", err
	}
	if !removed {
		return fmt.Sprintf("ℹ️ No %s replacement for %s", ns, from), nil
	}
	return fmt.Sprintf("❌ Removed %s replacement for %s", ns, from), nil
}

func (h *Handler) setBlacklist(_ context.Context, arg string) (string, error) {
	var words []string
	if arg != "-" {
		words = strings.Split(arg, ",")
	}
	cleaned, err := h.settings.SetBlacklist(words)
	if err != nil {
		return "", err
	}
	if len(cleaned) == 0 {
		return "✅ Blacklist cleared.", nil
	}
	return "✅ Blacklist updated: " + strings.Join(cleaned, ", "), nil
}

func (h *Handler) setBlacklistMode(_ context.Context, arg string) (string, error) {
	mode, err := settingsDomain.ParseBlacklistMode(arg)
	if err != nil {
		return "", err
	}
	if err := h.settings.SetBlacklistMode(mode); err != nil {
		return "", err
	}
	return fmt.Sprintf("✅ Blacklist mode: %s", mode), nil
}

func (h *Handler) toggle(_ context.Context, arg string) (string, error) {
	name, err := settingsDomain.ParseFilterName(arg)
	if err != nil {
		return "", err
	}
	state, err := h.settings.ToggleFilter(name)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("🧰 Filter %s: %s", name, onOff(state)), nil
}

func (h *Handler) resolve(ctx context.Context, arg string) (string, error) {
	id, err := h.settings.Resolve(ctx, arg)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("🔎 %s → %d", identity.Normalize(arg), id), nil
}

func (h *Handler) alias(_ context.Context, arg string) (string, error) {
	fields := strings.Fields(arg)
	if len(fields) != 2 {
		return "Usage: /alias <channel> <id>", nil
	}
	id, err := strconv.ParseInt(identity.Normalize(fields[1]), 10, 64)
	if err != nil {
		return "", fmt.Errorf("invalid chat ID %q", fields[1])
	}
	if err := h.settings.SetAlias(fields[0], id); err != nil {
		return "", err
	}
	return fmt.Sprintf("🔗 %s is now %s", identity.Normalize(fields[0]), identity.FormatID(id)), nil
}

func (h *Handler) rssLink(_ context.Context, arg string) (string, error) {
	target := identity.Normalize(arg)
	return fmt.Sprintf("🔗 RSS feed for %s:\nhttp://localhost:%s/rss/%s", target, h.cfg.HTTPPort, target), nil
}

func (h *Handler) helpText() string {
	var text strings.Builder
	text.WriteString("Available commands:\n")
	for _, c := range h.ordered {
		line := "/" + c.name
		if c.usage != "" {
			line += " " + c.usage
		}
		fmt.Fprintf(&text, "%s - %s\n", line, c.help)
	}
	text.WriteString("\nChannels may be given as @handle, t.me links, invite links or numeric IDs.")
	return text.String()
}

func (h *Handler) welcomeText() string {
	return "👋 Welcome to channel mirror!\n\nI copy posts from source channels to target channels.\n\n" + h.helpText()
}

func (h *Handler) renderSettings(context.Context, string) (string, error) {
	snap, err := h.settings.Snapshot()
	if err != nil {
		return "", err
	}

	var text strings.Builder
	text.WriteString("⚙️ Settings\n\n")
	fmt.Fprintf(&text, "🔄 Forwarding: %s\n", onOff(snap.Forwarding.Forwarding))
	fmt.Fprintf(&text, "✏️ Edit sync: %s | 🗑 Delete sync: %s\n", onOff(snap.Forwarding.EditSync), onOff(snap.Forwarding.DeleteSync))
	fmt.Fprintf(&text, "🚫 Blacklist: %s (%s)\n", onOff(snap.Blacklist.Enabled), snap.Blacklist.Mode)

	fmt.Fprintf(&text, "\n📥 Sources (%d):\n", len(snap.Routing.Sources))
	writeLines(&text, snap.Routing.Sources)
	fmt.Fprintf(&text, "\n📤 Targets (%d):\n", len(snap.Routing.Targets))
	writeLines(&text, snap.Routing.Targets)

	if len(snap.Routing.Rules) > 0 {
		text.WriteString("\n🔀 Routes:\n")
		for _, rule := range snap.Routing.Rules {
			fmt.Fprintf(&text, "%s → %s\n", rule.Source, strings.Join(rule.Targets, ", "))
		}
	}

	r := snap.Replacements
	fmt.Fprintf(&text, "\n✏️ Replacements: words %d | links %d | mentions %d\n", len(r.Words), len(r.Links), len(r.Mentions))
	for _, rule := range lo.Flatten([][]settingsDomain.Replacement{r.Words, r.Links, r.Mentions}) {
		fmt.Fprintf(&text, "%s → %s\n", rule.From, rule.To)
	}

	words := "None"
	if len(snap.Blacklist.Words) > 0 {
		words = strings.Join(snap.Blacklist.Words, ", ")
	}
	fmt.Fprintf(&text, "🚫 Blacklisted words: %s\n", words)

	f := snap.Filters
	fmt.Fprintf(&text, "\n🧰 Filters: text %s | image %s | video %s | link %s | block mentions %s\n",
		onOff(f.OnlyText), onOff(f.OnlyImage), onOff(f.OnlyVideo), onOff(f.OnlyLink), onOff(f.BlockMentions))
	fmt.Fprintf(&text, "🔗 Aliases: %d", len(snap.Aliases))

	return text.String(), nil
}

func (h *Handler) renderStatus(context.Context, string) (string, error) {
	status, err := h.settings.Forwarding()
	if err != nil {
		return "", err
	}

	var text strings.Builder
	text.WriteString("📊 Status\n\n")
	fmt.Fprintf(&text, "Forwarding: %s\n", onOff(status.Forwarding))
	fmt.Fprintf(&text, "Storage: %s\n", h.cfg.StoragePath)

	stats := h.stats.Snapshot()
	if len(stats) == 0 {
		text.WriteString("\nNo deliveries yet.")
		return text.String(), nil
	}
	text.WriteString("\nDeliveries:\n")
	for _, st := range stats {
		fmt.Fprintf(&text, "%s: ✅ %d ❌ %d", st.Target, st.Succeeded, st.Failed)
		if st.LastError != "" {
			fmt.Fprintf(&text, " (last error: %s)", st.LastError)
		}
		text.WriteString("\n")
	}
	return text.String(), nil
}

func writeLines(b *strings.Builder, lines []string) {
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
}

func onOff(on bool) string {
	if on {
		return "✅"
	}
	return "❌"
}
