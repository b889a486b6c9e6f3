package notification

import (
	"context"
	"fmt"
	"strings"

	"campushire/models"
)

// Domain producers. These format a record and hand it to the dispatcher; they
// carry no transport logic of their own.

// NotifyJobMatch tells a student about a newly posted job that fits their profile.
func (d *DefaultDispatcher) NotifyJobMatch(ctx context.Context, studentID string, job models.Job, score float64, matched []string) {
	title := fmt.Sprintf("New match: %s", job.Title)
	body := fmt.Sprintf(
		"%s is a %.0f%% match with your profile. Matching skills: %s.",
		job.Title, score, strings.Join(matched, ", "),
	)

	priority := string(models.PriorityMedium)
	if score >= 80 {
		priority = string(models.PriorityHigh)
	}

	d.Send(ctx, studentID, models.NotificationInput{
		Type:     string(models.NotificationTypeJobMatch),
		Title:    title,
		Body:     body,
		Priority: priority,
		Data: map[string]any{
			"jobId": job.ID,
			"score": score,
		},
	})
}

// NotifySkillDevelopment nudges a student about skills missing for a target job.
func (d *DefaultDispatcher) NotifySkillDevelopment(ctx context.Context, studentID string, report models.SkillGapReport) {
	if len(report.MissingSkills) == 0 {
		return
	}

	body := fmt.Sprintf(
		"You cover %.0f%% of the required skills. Picking up %s would close the gap.",
		report.Coverage*100, strings.Join(report.MissingSkills, ", "),
	)

	d.Send(ctx, studentID, models.NotificationInput{
		Type:     string(models.NotificationTypeSkillDevelopment),
		Title:    "Skill development suggestion",
		Body:     body,
		Priority: string(models.PriorityLow),
		Data: map[string]any{
			"jobId":         report.JobID,
			"missingSkills": report.MissingSkills,
		},
	})
}

// NotifyAssessmentReminder fires when a scheduled assessment reminder comes due.
func (d *DefaultDispatcher) NotifyAssessmentReminder(ctx context.Context, p models.ReminderPayload) {
	title := p.Title
	if title == "" {
		title = fmt.Sprintf("Upcoming assessment: %s", p.Assessment)
	}

	d.Send(ctx, p.StudentID, models.NotificationInput{
		Type:     string(models.NotificationTypeAssessmentReminder),
		Title:    title,
		Body:     p.Body,
		Priority: string(models.PriorityHigh),
		Data: map[string]any{
			"reminderId": p.ReminderID,
			"assessment": p.Assessment,
			"fireDate":   p.FireDate,
		},
	})
}

// NotifyApplicationUpdate tells a student their application moved through the pipeline.
func (d *DefaultDispatcher) NotifyApplicationUpdate(ctx context.Context, app models.Application, jobTitle string) {
	body := fmt.Sprintf("Your application for %s is now %q.", jobTitle, app.Status)

	priority := string(models.PriorityMedium)
	if app.Status == models.ApplicationOffered {
		priority = string(models.PriorityHigh)
	}

	d.Send(ctx, app.StudentID, models.NotificationInput{
		Type:     string(models.NotificationTypeApplicationUpdate),
		Title:    "Application update",
		Body:     body,
		Priority: priority,
		Data: map[string]any{
			"applicationId": app.ID,
			"jobId":         app.JobID,
			"status":        app.Status,
		},
	})
}

// NotifyPlacement pushes a placement event onto the university dashboard feed.
func (d *DefaultDispatcher) NotifyPlacement(ctx context.Context, universityID, studentName, jobTitle string) {
	d.Send(ctx, universityID, models.NotificationInput{
		Type:     string(models.NotificationTypePlacement),
		Title:    "Student placed",
		Body:     fmt.Sprintf("%s received an offer for %s.", studentName, jobTitle),
		Priority: string(models.PriorityHigh),
	})
}

// Announce fans an announcement out to every student of a university.
func (d *DefaultDispatcher) Announce(ctx context.Context, studentIDs []string, title, body string) {
	d.SendBulk(ctx, studentIDs, models.NotificationInput{
		Type:  string(models.NotificationTypeAnnouncement),
		Title: title,
		Body:  body,
	})
}
