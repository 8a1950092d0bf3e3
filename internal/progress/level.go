package progress

import "dailyhabit/internal/models"

// PointsPerLevel is the XP span of one level.
const PointsPerLevel = 100

// Level derives the user level from accumulated points: 0-99 is level 1,
// 100-199 is level 2, and so on.
func Level(points int) int {
	if points < 0 {
		points = 0
	}
	return points/PointsPerLevel + 1
}

// LevelProgress returns points accumulated within the current level,
// the numerator of the level progress bar over PointsPerLevel.
func LevelProgress(points int) int {
	if points < 0 {
		return 0
	}
	return points % PointsPerLevel
}

// CurrentMilestone returns the highest catalog milestone whose threshold
// the points have crossed. The catalog starts at 0 XP, so there is
// always a current milestone.
func CurrentMilestone(points int) models.Milestone {
	current := models.Milestones[0]
	for _, m := range models.Milestones {
		if m.MinXP <= points {
			current = m
		}
	}
	return current
}

// NextMilestone returns the first milestone not yet reached, or false at
// the top tier.
func NextMilestone(points int) (models.Milestone, bool) {
	for _, m := range models.Milestones {
		if m.MinXP > points {
			return m, true
		}
	}
	return models.Milestone{}, false
}
