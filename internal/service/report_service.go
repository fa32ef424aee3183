package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"learnquest/internal/analytics"
)

// ReportService emails parents a weekly progress digest via Amazon SES
type ReportService struct {
	client    *sesv2.Client
	dashboard *DashboardService
	fromEmail string
	fromName  string
	enabled   bool
}

// NewReportService creates a new report service. An empty fromEmail
// disables sending; the service logs and skips instead.
func NewReportService(awsRegion, fromEmail, fromName string, dashboard *DashboardService) (*ReportService, error) {
	if fromEmail == "" {
		log.Println("Report emails disabled: REPORT_FROM_EMAIL not configured")
		return &ReportService{dashboard: dashboard, enabled: false}, nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(awsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	log.Printf("Report emails enabled: from=%s, region=%s", fromEmail, awsRegion)
	return &ReportService{
		client:    sesv2.NewFromConfig(cfg),
		dashboard: dashboard,
		fromEmail: fromEmail,
		fromName:  fromName,
		enabled:   true,
	}, nil
}

// IsEnabled returns whether report emails will actually be sent
func (s *ReportService) IsEnabled() bool {
	return s.enabled
}

// SendWeeklyReport assembles a child's weekly dashboard and emails it to
// the parent address
func (s *ReportService) SendWeeklyReport(ctx context.Context, toEmail string, childID int64) error {
	dash, err := s.dashboard.Dashboard(ctx, childID, analytics.WindowWeek)
	if err != nil {
		return fmt.Errorf("failed to build weekly report for child %d: %w", childID, err)
	}

	if !s.enabled {
		log.Printf("Skipping weekly report for %s (report emails disabled)", dash.Child.Name)
		return nil
	}

	subject := fmt.Sprintf("%s's week on LearnQuest", dash.Child.Name)
	htmlBody, textBody := renderWeeklyReport(dash)
	return s.sendEmail(ctx, toEmail, subject, htmlBody, textBody)
}

func renderWeeklyReport(dash *Dashboard) (htmlBody, textBody string) {
	minutes := dash.Summary.TotalTimeSpentSeconds / 60

	var strengths, weaknesses []string
	for _, p := range dash.Skills.Strengths {
		strengths = append(strengths, fmt.Sprintf("%s (%.0f%%)", p.SkillArea, p.MasteryLevel))
	}
	for _, p := range dash.Skills.Weaknesses {
		weaknesses = append(weaknesses, fmt.Sprintf("%s (%.0f%%)", p.SkillArea, p.MasteryLevel))
	}

	htmlBody = fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; color: #333;">
	<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
		<h1 style="color: #4a90e2;">%s's week on LearnQuest</h1>
		<p>Here is what %s got up to over the last seven days:</p>
		<ul>
			<li><strong>%d</strong> activities completed</li>
			<li><strong>%d</strong> stars earned</li>
			<li><strong>%d</strong> minutes of practice</li>
			<li><strong>%d%%</strong> average accuracy</li>
		</ul>
		<p><strong>Strongest skills:</strong> %s</p>
		<p><strong>Worth practicing:</strong> %s</p>
		<p style="font-size: 12px; color: #666;">This is an automated email from LearnQuest. Please do not reply.</p>
	</div>
</body>
</html>
`,
		dash.Child.Name, dash.Child.Name,
		dash.Summary.Count, dash.Summary.TotalStars, minutes, dash.Summary.AverageAccuracyPercent,
		strings.Join(strengths, ", "), strings.Join(weaknesses, ", "))

	textBody = fmt.Sprintf(`%s's week on LearnQuest

Activities completed: %d
Stars earned: %d
Minutes of practice: %d
Average accuracy: %d%%

Strongest skills: %s
Worth practicing: %s

---
This is an automated email from LearnQuest. Please do not reply.
`,
		dash.Child.Name,
		dash.Summary.Count, dash.Summary.TotalStars, minutes, dash.Summary.AverageAccuracyPercent,
		strings.Join(strengths, ", "), strings.Join(weaknesses, ", "))

	return htmlBody, textBody
}

func (s *ReportService) sendEmail(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	fromAddress := s.fromEmail
	if s.fromName != "" {
		fromAddress = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send report email: %w", err)
	}

	if result.MessageId != nil {
		log.Printf("Weekly report sent to %s (message id %s)", toEmail, *result.MessageId)
	}
	return nil
}
