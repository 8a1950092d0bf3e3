package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dailyhabit/internal/models"
	"dailyhabit/internal/progress"
	"dailyhabit/internal/social"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateToday:
		content = m.viewToday()
	case StateStats:
		content = docStyle.Render(m.viewStats())
	case StateProfile:
		content = docStyle.Render(m.viewProfile())
	case StateAddHabit:
		content = docStyle.Render(m.form.View())
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	parts := []string{m.viewTabs(), content}
	if m.statusMsg != "" {
		parts = append(parts, subtleStyle.Render("  "+m.statusMsg))
	}
	parts = append(parts, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Today", "Stats", "Profile"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewToday() string {
	header := headerStyle.Render(fmt.Sprintf("%s (%s)", m.day, m.day.Weekday()))
	percent := progress.DailyCompletionPercent(m.habits, m.todos, m.day)
	bar := renderBar(percent, 20)

	top := header + "  " + bar + fmt.Sprintf(" %d%%", percent)
	if m.note != "" {
		top += "\n" + subtleStyle.Render("📝 "+m.note)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		docStyle.Render(top),
		m.today.View(),
	)
}

func renderBar(percent, width int) string {
	filled := percent * width / 100
	return doneBarStyle.Render(strings.Repeat("█", filled)) +
		subtleStyle.Render(strings.Repeat("░", width-filled))
}

func (m Model) viewStats() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Statistics"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Total completions: %d\n", progress.TotalCompletions(m.habits))

	best := 0
	var bestHabit string
	for _, h := range m.habits {
		if s := progress.CurrentStreak(h, m.day); s > best {
			best = s
			bestHabit = h.Title
		}
	}
	if best > 0 {
		fmt.Fprintf(&b, "Best streak:       %d days (%s)\n", best, bestHabit)
	}

	b.WriteString("\nLast 7 days\n")
	for _, p := range progress.WeeklyTrend(m.habits, m.day) {
		fmt.Fprintf(&b, "  %s  %s %d\n",
			p.Day.Weekday().String()[:3],
			doneBarStyle.Render(strings.Repeat("■", p.Count)), p.Count)
	}

	totals := progress.CategoryTotals(m.habits)
	if len(totals) > 0 {
		b.WriteString("\nBy category\n")
		for _, c := range models.AllCategories {
			if totals[c] == 0 {
				continue
			}
			fmt.Fprintf(&b, "  %-10s %d\n", c, totals[c])
		}
	}

	b.WriteString("\nPer habit\n")
	for _, h := range m.habits {
		fmt.Fprintf(&b, "  %s %-24s %3d%%  ", h.Icon, h.Title, progress.CompletionRate(h, m.day))
		for _, done := range progress.Heatmap(h, m.day, 14) {
			if done {
				b.WriteString(doneBarStyle.Render("█"))
			} else {
				b.WriteString(subtleStyle.Render("░"))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewProfile() string {
	var b strings.Builder

	level := progress.Level(m.profile.Points)
	milestone := progress.CurrentMilestone(m.profile.Points)

	b.WriteString(headerStyle.Render(fmt.Sprintf("%s %s", m.profile.Avatar, m.profile.Username)))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Invite code: %s\n", social.InviteCode(m.profile.Username))
	fmt.Fprintf(&b, "Points:      %d\n", m.profile.Points)
	fmt.Fprintf(&b, "Level:       %d  %s %d/%d\n", level,
		renderBar(progress.LevelProgress(m.profile.Points)*100/progress.PointsPerLevel, 10),
		progress.LevelProgress(m.profile.Points), progress.PointsPerLevel)
	fmt.Fprintf(&b, "Milestone:   %s %s\n", milestone.Icon, milestone.Name)
	if next, ok := progress.NextMilestone(m.profile.Points); ok {
		fmt.Fprintf(&b, "Next:        %s %s at %d points\n", next.Icon, next.Name, next.MinXP)
	}

	b.WriteString("\nFriends\n")
	if len(m.friends) == 0 {
		b.WriteString(subtleStyle.Render("  None yet. Share your invite code.\n"))
	}
	for _, f := range m.friends {
		fmt.Fprintf(&b, "  %s %-20s %d points  today %d%%\n", f.avatar, f.name, f.points, f.percent)
	}
	if m.pending > 0 {
		fmt.Fprintf(&b, "\n%d pending friend request(s). Review with 'dailyhabit friend requests'.\n", m.pending)
	}
	return b.String()
}

func (m Model) viewConfirmDelete() string {
	what := "habit"
	if m.deleteTodoID != "" {
		what = "todo"
	}
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Are you sure you want to delete this %s?", what)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
