package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/Developerxgame/RapMaster-Simulator-Game-Design-8822-sub000/internal/game"
)

// View renders the session.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.setup != nil {
		return m.setup.View()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	switch m.screen {
	case ScreenDashboard:
		b.WriteString(m.renderDashboard())
	case ScreenStudio:
		b.WriteString(m.renderStudio())
	case ScreenCatalog:
		b.WriteString(m.renderCatalog())
	case ScreenHustle:
		b.WriteString(m.renderHustle())
	case ScreenShop:
		b.WriteString(m.renderShop())
	case ScreenSkills:
		b.WriteString(m.renderSkills())
	case ScreenSocial:
		b.WriteString(m.renderSocial())
	case ScreenNotices:
		b.WriteString(m.renderNotices())
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(" " + m.status)
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderHeader draws the status bar and screen tabs.
func (m SessionModel) renderHeader() string {
	p := m.state.Player
	level := p.Level()

	var b strings.Builder
	headline := fmt.Sprintf(" %s  |  %s  |  Week %d, %d",
		titleStyle.Render(p.StageName), level.Name, p.Week, p.Year)
	b.WriteString(headline)
	b.WriteString("\n")

	stats := fmt.Sprintf(" Fame %d  Rep %d  Fans %s  %s  Energy %d",
		p.Fame, p.Reputation, formatCount(p.Fans),
		moneyStyle.Render(fmt.Sprintf("$%.0f", p.NetWorth)), p.Energy)
	if unread := m.state.UnreadNotifications(); unread > 0 {
		stats += warnStyle.Render(fmt.Sprintf("  [%d new]", unread))
	}
	b.WriteString(stats)
	b.WriteString("\n\n")

	tabs := make([]string, screenCount)
	for s := Screen(0); s < screenCount; s++ {
		if s == m.screen {
			tabs[s] = activeTabStyle.Render(s.Title())
		} else {
			tabs[s] = tabStyle.Render(s.Title())
		}
	}
	b.WriteString(" " + strings.Join(tabs, ""))
	b.WriteString("\n")
	return b.String()
}

// renderDashboard draws the career overview: progression, earnings and
// the latest notifications.
func (m SessionModel) renderDashboard() string {
	p := m.state.Player
	level := p.Level()

	var left strings.Builder
	left.WriteString(titleStyle.Render("Career"))
	left.WriteString("\n")
	left.WriteString(fmt.Sprintf("Level %d: %s\n", level.ID, level.Name))
	if next, ok := game.NextLevel(level); ok {
		left.WriteString(faintStyle.Render(
			fmt.Sprintf("Next: %s (fame %d, rep %d)\n", next.Name, next.FameMin, next.RepMin)))
	} else {
		left.WriteString(viralStyle.Render("You are a legend. Nothing left to climb.\n"))
	}
	left.WriteString(fmt.Sprintf("Releases: %d   Consistency: %.1f\n",
		p.TotalReleases, p.ConsistencyScore))
	left.WriteString(fmt.Sprintf("Age %d, career week %d\n", p.Age, p.CareerWeek))

	var right strings.Builder
	e := m.state.Earnings
	right.WriteString(titleStyle.Render("Earnings"))
	right.WriteString("\n")
	right.WriteString(fmt.Sprintf("This week: %s\n", moneyStyle.Render(fmt.Sprintf("$%.2f", e.ThisWeek))))
	right.WriteString(fmt.Sprintf("Streaming: $%.0f   Video: $%.0f\n", e.Streaming, e.Video))
	right.WriteString(fmt.Sprintf("Concerts:  $%.0f   Albums: $%.0f\n", e.Concerts, e.AlbumSales))
	right.WriteString(fmt.Sprintf("Lifetime:  $%.0f\n", e.Total))

	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(left.String()), " ", panelStyle.Render(right.String()))

	var b strings.Builder
	b.WriteString(panels)
	b.WriteString("\n")

	b.WriteString(" " + titleStyle.Render("Latest"))
	b.WriteString("\n")
	notices := m.state.Notifications
	if len(notices) > 5 {
		notices = notices[:5]
	}
	if len(notices) == 0 {
		b.WriteString(faintStyle.Render(" Nothing yet. Hit the studio.\n"))
	}
	for _, n := range notices {
		b.WriteString(fmt.Sprintf(" %s %s\n", noticeGlyph(n.Type), n.Message))
	}
	return b.String()
}

// renderStudio draws the bookable studio sessions.
func (m SessionModel) renderStudio() string {
	var b strings.Builder
	b.WriteString(" " + titleStyle.Render("Studio"))
	b.WriteString("\n\n")
	for i, project := range studioProjects {
		line := fmt.Sprintf("%-24s %3d energy  $%.0f", project.name, project.energyCost, project.moneyCost)
		b.WriteString(m.renderRow(i, line))
	}
	b.WriteString("\n")
	b.WriteString(faintStyle.Render(
		" Quality comes from your skills. Release from the Catalog screen.\n"))
	return b.String()
}

// renderCatalog draws unreleased works, then the release stats table.
func (m SessionModel) renderCatalog() string {
	entries := m.catalogEntries()

	var b strings.Builder
	b.WriteString(" " + titleStyle.Render("Catalog"))
	b.WriteString("\n\n")

	if len(entries) == 0 {
		b.WriteString(faintStyle.Render(" Nothing recorded yet.\n"))
		return b.String()
	}

	for i, entry := range entries {
		tag := "unreleased"
		if entry.releaseID != 0 {
			tag = "out"
		}
		line := fmt.Sprintf("%-30s %-13s [%s]", truncate(entry.label, 30), entry.ctype, tag)
		b.WriteString(m.renderRow(i, line))
	}

	if len(m.state.Releases) > 0 {
		rows := make([]table.Row, len(m.state.Releases))
		for i, rel := range m.state.Releases {
			chart := "-"
			if rel.ChartPosition > 0 {
				chart = fmt.Sprintf("#%d", rel.ChartPosition)
			}
			rows[i] = table.Row{
				truncate(rel.Title, 22),
				string(rel.Type),
				formatCount(rel.Views),
				formatCount(rel.WeeklyViews),
				chart,
				fmt.Sprintf("$%.0f", rel.Earnings),
			}
		}
		m.releases.SetRows(rows)
		b.WriteString("\n")
		b.WriteString(panelStyle.Render(m.releases.View()))
		b.WriteString("\n")
	}
	return b.String()
}

// renderHustle draws the job board.
func (m SessionModel) renderHustle() string {
	level := m.state.Player.CareerLevelID

	var b strings.Builder
	b.WriteString(" " + titleStyle.Render("Hustle"))
	b.WriteString("\n\n")
	for i, job := range game.Jobs {
		line := fmt.Sprintf("%-20s %3d energy  $%-7.0f", job.Name, job.EnergyCost, job.Pay)
		if level < job.MinLevel {
			line += faintStyle.Render(fmt.Sprintf(" (level %d)", job.MinLevel))
		}
		b.WriteString(m.renderRow(i, line))
	}
	return b.String()
}

// renderShop draws the shop catalog.
func (m SessionModel) renderShop() string {
	var b strings.Builder
	b.WriteString(" " + titleStyle.Render("Shop"))
	b.WriteString("\n\n")
	for i, item := range game.ShopItems {
		perk := ""
		if item.FameBonus > 0 {
			perk = fmt.Sprintf("+%d fame", item.FameBonus)
		}
		if item.RepBonus > 0 {
			perk = fmt.Sprintf("+%d rep", item.RepBonus)
		}
		line := fmt.Sprintf("%-20s $%-9.0f %s", item.Name, item.Price, faintStyle.Render(perk))
		b.WriteString(m.renderRow(i, line))
	}
	return b.String()
}

// renderSkills draws the skill ladder with upgrade costs.
func (m SessionModel) renderSkills() string {
	skills := m.state.Player.Skills
	cfg := m.engine.Balance()

	var b strings.Builder
	b.WriteString(" " + titleStyle.Render("Skills"))
	b.WriteString("\n\n")
	for i, name := range skillOrder {
		value := skills.Get(name)
		bar := strings.Repeat("#", value/5) + strings.Repeat(".", 20-value/5)
		costStr := "maxed"
		if cost, ok := game.SkillUpgradeCost(cfg, value); ok {
			costStr = fmt.Sprintf("%d energy", cost)
		}
		line := fmt.Sprintf("%-11s %3d [%s] %s", name, value, bar, faintStyle.Render(costStr))
		b.WriteString(m.renderRow(i, line))
	}
	return b.String()
}

// renderSocial draws platform posting rows, then the venue ladder.
func (m SessionModel) renderSocial() string {
	st := m.state
	level := st.Player.CareerLevelID

	var b strings.Builder
	b.WriteString(" " + titleStyle.Render("Social"))
	b.WriteString("\n\n")
	for i, platform := range game.Platforms {
		line := fmt.Sprintf("Post on %-9s %s followers",
			platform, formatCount(platformFollowers(st, platform)))
		b.WriteString(m.renderRow(i, line))
	}

	b.WriteString("\n " + titleStyle.Render("Concerts"))
	b.WriteString("\n\n")
	for i, venue := range game.Venues {
		line := fmt.Sprintf("%-16s cap %-7s $%.0f/ticket",
			venue.Name, formatCount(venue.Capacity), venue.TicketPrice)
		if level < venue.MinLevel {
			line += faintStyle.Render(fmt.Sprintf(" (level %d)", venue.MinLevel))
		}
		b.WriteString(m.renderRow(len(game.Platforms)+i, line))
	}
	return b.String()
}

// renderNotices draws the notification feed.
func (m SessionModel) renderNotices() string {
	var b strings.Builder
	b.WriteString(" " + titleStyle.Render("Notices"))
	b.WriteString("\n\n")
	if len(m.state.Notifications) == 0 {
		b.WriteString(faintStyle.Render(" All quiet.\n"))
		return b.String()
	}
	for _, n := range m.state.Notifications {
		style := lipgloss.NewStyle()
		if !n.Read {
			style = cursorStyle
		}
		b.WriteString(style.Render(
			fmt.Sprintf(" %s W%d/%d  %s: %s", noticeGlyph(n.Type), n.Week, n.Year, n.Title, n.Message)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(faintStyle.Render(" enter: mark read  |  c: clear\n"))
	return b.String()
}

// renderRow draws one selectable row with the cursor marker.
func (m SessionModel) renderRow(i int, line string) string {
	if i == m.cursor {
		return cursorStyle.Render(" > "+line) + "\n"
	}
	return "   " + line + "\n"
}

// noticeGlyph maps a notification type to a feed marker.
func noticeGlyph(t game.NotificationType) string {
	switch t {
	case game.NoticeViral, game.NoticeChart:
		return "**"
	case game.NoticeWarning, game.NoticeDecline:
		return "!!"
	case game.NoticeEarnings, game.NoticeJob, game.NoticePurchase:
		return " $"
	default:
		return " -"
	}
}

// formatCount renders large counts compactly (1.2K, 3.4M).
func formatCount(n int64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "."
}
