package service

import (
	"fmt"
	"strings"
	"time"

	"fintrack/config"
	"fintrack/models"

	"gopkg.in/gomail.v2"
)

// ReminderService 账单提醒邮件服务
type ReminderService struct {
	cfg *config.EmailConfig
}

// NewReminderService 创建提醒服务
func NewReminderService(cfg *config.EmailConfig) *ReminderService {
	return &ReminderService{cfg: cfg}
}

// SendUpcomingBills 发送未付账单提醒邮件
// bills 为即将到期的未付账单列表（由调用方筛选）
func (s *ReminderService) SendUpcomingBills(bills []models.Bill, days int) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("邮件服务未启用，请配置 email.enabled=true")
	}
	if s.cfg.To == "" {
		return fmt.Errorf("未配置提醒收件人 email.to")
	}

	subject := fmt.Sprintf("【Fintrack】未来 %d 天内有 %d 笔账单到期", days, len(bills))
	body := s.generateReminderBody(bills, days)

	return s.sendEmail(s.cfg.To, subject, body)
}

// generateReminderBody 生成提醒邮件内容
func (s *ReminderService) generateReminderBody(bills []models.Bill, days int) string {
	var rows strings.Builder
	var total float64
	for _, b := range bills {
		total += b.Amount
		rows.WriteString(fmt.Sprintf(`
            <tr>
                <td>%s</td>
                <td>%s</td>
                <td style="text-align: right;">%.2f</td>
                <td>%s</td>
            </tr>`,
			b.Name, b.Category, b.Amount, b.DueDate.Format("2006-01-02")))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 20px rgba(0,0,0,0.1); }
        .header { background: linear-gradient(135deg, #2563eb, #1d4ed8); color: white; padding: 30px; text-align: center; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { padding: 40px 30px; }
        .content p { color: #333; line-height: 1.8; margin: 0 0 20px; }
        table { width: 100%%; border-collapse: collapse; margin: 20px 0; }
        th, td { border-bottom: 1px solid #e5e7eb; padding: 10px 8px; text-align: left; font-size: 14px; }
        th { background: #f8f9fa; color: #374151; }
        .total { font-weight: 600; color: #1d4ed8; }
        .footer { background: #f8f9fa; padding: 20px 30px; text-align: center; color: #6c757d; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>💰 账单到期提醒</h1>
        </div>
        <div class="content">
            <p>以下账单将在未来 <strong>%d</strong> 天内到期，共 <strong>%d</strong> 笔：</p>
            <table>
                <tr><th>账单</th><th>类别</th><th style="text-align: right;">金额</th><th>到期日</th></tr>%s
            </table>
            <p class="total">合计：%.2f</p>
        </div>
        <div class="footer">
            <p>此邮件由系统自动发送，请勿回复</p>
            <p>© Fintrack - 您的个人财务管理助手</p>
        </div>
    </div>
</body>
</html>
`, days, len(bills), rows.String(), total)
}

// sendEmail 发送邮件
func (s *ReminderService) sendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}
	return nil
}

// FilterUpcomingUnpaid 从账单列表中筛选 days 天内到期的未付账单
func FilterUpcomingUnpaid(bills []models.Bill, now time.Time, days int) []models.Bill {
	deadline := now.AddDate(0, 0, days)
	var upcoming []models.Bill
	for _, b := range bills {
		if b.Status == models.StatusPaid {
			continue
		}
		if b.DueDate.After(deadline) {
			continue
		}
		upcoming = append(upcoming, b)
	}
	return upcoming
}
