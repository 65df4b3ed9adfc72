package notify

import (
	"fmt"
	"strings"

	"github.com/su-physio/clinic-scheduler/internal/models"
	"github.com/su-physio/clinic-scheduler/internal/timezone"
)

// Message builders. Text is Burmese HTML, matching what the clinic staff
// already receive.

var statusText = map[string]string{
	"pending":   "⏳ စောင့်ဆိုင်းဆဲ",
	"confirmed": "✅ အတည်ပြုပြီး",
	"cancelled": "❌ ပယ်ဖျက်ပြီး",
	"completed": "✔️ ပြီးစီးပြီ",
}

var statusEmoji = map[string]string{
	"pending":   "⏳",
	"confirmed": "✅",
	"cancelled": "❌",
	"completed": "✔️",
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "မရှိ"
	}
	return s
}

func BuildNewBookingMessage(b models.Booking) string {
	return strings.TrimSpace(fmt.Sprintf(`
🆕 <b>လူနာအသစ် Booking</b>

👤 <b>အမည်:</b> %s
📞 <b>ဖုန်း:</b> %s
📍 <b>လိပ်စာ:</b> %s

📅 <b>ရက်စွဲ:</b> %s
🕐 <b>အချိန်:</b> %s
💊 <b>ကုသမှု:</b> %s

📝 <b>မှတ်ချက်:</b> %s

⏳ <b>အခြေအနေ:</b> စောင့်ဆိုင်းဆဲ

🔔 ကျေးဇူးပြု၍ အတည်ပြုပေးပါ။`,
		b.Name, b.Phone, orNone(b.Address),
		timezone.FormatMM(b.Date), b.Time, models.TreatmentName(b.Treatment),
		orNone(b.Notes)))
}

func BuildPublicBookingMessage(b models.Booking) string {
	return strings.TrimSpace(fmt.Sprintf(`
🌐 <b>Public Booking (Website)</b>

📋 <b>Booking Code:</b> %s

👤 <b>အမည်:</b> %s
📞 <b>ဖုန်း:</b> %s
📍 <b>လိပ်စာ:</b> %s

📅 <b>ရက်စွဲ:</b> %s
🕐 <b>အချိန်:</b> %s
💊 <b>ကုသမှု:</b> %s

📝 <b>မှတ်ချက်:</b> %s

⏳ <b>အခြေအနေ:</b> စောင့်ဆိုင်းဆဲ

🔔 ကျေးဇူးပြု၍ အတည်ပြုပေးပါ။`,
		b.BookingCode, b.Name, b.Phone, b.Address,
		timezone.FormatMM(b.Date), b.Time, models.TreatmentName(b.Treatment),
		orNone(b.Notes)))
}

func BuildStatusUpdateMessage(b models.Booking) string {
	text, ok := statusText[b.Status]
	if !ok {
		text = b.Status
	}

	return strings.TrimSpace(fmt.Sprintf(`
🔄 <b>အခြေအနေ ပြောင်းလဲမှု</b>

👤 <b>လူနာ:</b> %s
📞 <b>ဖုန်း:</b> %s
📅 <b>ရက်စွဲ:</b> %s | %s

✅ <b>အခြေအနေ:</b> %s`,
		b.Name, b.Phone, timezone.FormatMM(b.Date), b.Time, text))
}

func BuildCancelledMessage(b models.Booking) string {
	reason := b.CancelReason
	if reason == "" {
		reason = "အကြောင်းပြချက် မဖော်ပြပါ"
	}

	return strings.TrimSpace(fmt.Sprintf(`
❌ <b>Booking ပယ်ဖျက်ခြင်း</b>

👤 <b>လူနာ:</b> %s
📞 <b>ဖုန်း:</b> %s
📅 <b>ရက်စွဲ:</b> %s | %s

🚫 <b>အကြောင်းပြချက်:</b>
%s

⏰ <b>ပယ်ဖျက်ချိန်:</b> %s`,
		b.Name, b.Phone, timezone.FormatMM(b.Date), b.Time,
		reason, timezone.Now().Format("2006-01-02 15:04")))
}

func BuildPublicCancelledMessage(b models.Booking) string {
	return strings.TrimSpace(fmt.Sprintf(`
❌ <b>Booking ပယ်ဖျက်ခြင်း (Public)</b>

📋 <b>Booking Code:</b> %s
👤 <b>လူနာ:</b> %s
📞 <b>ဖုန်း:</b> %s
📅 <b>ရက်စွဲ:</b> %s | %s

🚫 <b>အကြောင်းပြချက်:</b>
%s

⏰ <b>ပယ်ဖျက်ချိန်:</b> %s`,
		b.BookingCode, b.Name, b.Phone, timezone.FormatMM(b.Date), b.Time,
		b.CancelReason, timezone.Now().Format("2006-01-02 15:04")))
}

func BuildReminderMessage(b models.Booking) string {
	return strings.TrimSpace(fmt.Sprintf(`
🔔 <b>ချိန်းဆိုမှု သတိပေးချက်</b>

👤 <b>လူနာ:</b> %s
📞 <b>ဖုန်း:</b> %s
📍 <b>လိပ်စာ:</b> %s

📅 <b>ရက်စွဲ:</b> %s
🕐 <b>အချိန်:</b> %s

💊 <b>ကုသမှု:</b> %s
📝 <b>မှတ်ချက်:</b> %s

⏰ မနက်ဖြန် ချိန်းဆိုမှု ရှိပါသည်!`,
		b.Name, b.Phone, orNone(b.Address),
		timezone.FormatMM(b.Date), b.Time,
		models.TreatmentName(b.Treatment), orNone(b.Notes)))
}

func BuildDefaultMessage(b models.Booking) string {
	return strings.TrimSpace(fmt.Sprintf(`
📋 <b>SU Physiotherapy</b>

👤 %s
📞 %s
📅 %s | %s`,
		b.Name, b.Phone, timezone.FormatMM(b.Date), b.Time))
}

func BuildTestMessage() string {
	return strings.TrimSpace(`
✅ <b>SU Physiotherapy</b>

🔔 Telegram Bot ချိတ်ဆက်မှု အောင်မြင်ပါသည်။

📱 App မှ notifications များ ဤနေရာတွင် ရောက်ရှိပါလိမ့်မည်။`)
}

// BuildDailySummaryMessage digests one day's bookings: per-status counts plus
// a numbered list.
func BuildDailySummaryMessage(date string, records []models.Booking) string {
	var confirmed, pending, completed, cancelled int
	for _, b := range records {
		switch b.Status {
		case "confirmed":
			confirmed++
		case "pending":
			pending++
		case "completed":
			completed++
		case "cancelled":
			cancelled++
		}
	}

	var sb strings.Builder
	sb.WriteString(strings.TrimSpace(fmt.Sprintf(`
📊 <b>ယနေ့ ချိန်းဆိုမှု အကျဉ်း</b>

📅 <b>ရက်စွဲ:</b> %s

📈 <b>စုစုပေါင်း:</b> %d ဦး
✅ <b>အတည်ပြု:</b> %d ဦး
⏳ <b>စောင့်ဆိုင်း:</b> %d ဦး
✔️ <b>ပြီးစီး:</b> %d ဦး
❌ <b>ပယ်ဖျက်:</b> %d ဦး`,
		timezone.FormatMM(date), len(records), confirmed, pending, completed, cancelled)))

	if len(records) > 0 {
		sb.WriteString("\n\n<b>အသေးစိတ်:</b>\n")
		for i, b := range records {
			emoji, ok := statusEmoji[b.Status]
			if !ok {
				emoji = "📌"
			}
			sb.WriteString(fmt.Sprintf("\n%d. %s %s - %s", i+1, emoji, b.Name, b.Time))
		}
	}
	return sb.String()
}

// BuildUpcomingRemindersMessage digests tomorrow's pending and confirmed
// bookings with contact details.
func BuildUpcomingRemindersMessage(date string, records []models.Booking) string {
	var sb strings.Builder
	sb.WriteString(strings.TrimSpace(fmt.Sprintf(`
🔔 <b>မနက်ဖြန် ချိန်းဆိုမှုများ</b>

📅 <b>ရက်စွဲ:</b> %s
👥 <b>လူနာ:</b> %d ဦး

<b>အသေးစိတ်:</b>`,
		timezone.FormatMM(date), len(records))))

	for i, b := range records {
		emoji := "⏳"
		if b.Status == "confirmed" {
			emoji = "✅"
		}
		address := b.Address
		if address == "" {
			address = "လိပ်စာ မရှိ"
		}
		sb.WriteString(fmt.Sprintf("\n\n%d. %s <b>%s</b>", i+1, emoji, b.Name))
		sb.WriteString(fmt.Sprintf("\n   📞 %s", b.Phone))
		sb.WriteString(fmt.Sprintf("\n   🕐 %s", b.Time))
		sb.WriteString(fmt.Sprintf("\n   📍 %s", address))
	}
	return sb.String()
}
