package icon

// keywordGroups maps benefit icon keys typed by operators (English and
// Vietnamese, with or without diacritics) to presentation icons. Earlier
// groups win when two keys strip to the same text.
var keywordGroups = []struct {
	id   ID
	keys []string
}{
	{Money, []string{
		"money", "salary", "bonus", "pay", "paid", "wage", "wages", "allowance", "commission",
		"13th month", "13th-month salary", "cash", "income", "dollar", "attach_money", "payments",
		"lương", "luong", "thưởng", "thuong", "lương tháng 13", "lương thưởng", "phụ cấp",
		"tiền", "thu nhập", "hoa hồng", "tăng lương",
	}},
	{Health, []string{
		"health", "healthcare", "health insurance", "insurance", "medical", "hospital",
		"doctor", "wellness", "local_hospital", "health_and_safety", "medical_services",
		"bảo hiểm", "bao hiem", "sức khỏe", "sức khoẻ", "khám sức khỏe", "y tế",
	}},
	{Training, []string{
		"training", "learning", "course", "courses", "workshop", "mentor", "mentoring",
		"coaching", "certification", "career growth", "model_training", "psychology",
		"đào tạo", "dao tao", "khóa học", "khoá học", "học", "chứng chỉ", "thăng tiến",
	}},
	{Education, []string{
		"education", "school", "study", "tuition", "degree", "scholarship", "book", "books",
		"menu_book", "giáo dục", "học bổng", "học phí", "trường",
	}},
	{Travel, []string{
		"travel", "trip", "company trip", "vacation", "holiday", "team building", "teambuilding",
		"flight", "flight_takeoff", "beach", "beach_access", "luggage",
		"du lịch", "du lich", "nghỉ mát", "dã ngoại",
	}},
	{Time, []string{
		"time", "schedule", "flexible", "flexible hours", "flexible time", "work from home", "wfh",
		"remote", "hybrid", "leave", "annual leave", "paid leave", "clock", "access_time", "schedule_send",
		"thời gian", "giờ giấc", "linh hoạt", "giờ linh hoạt", "nghỉ phép", "làm việc từ xa",
	}},
	{Parking, []string{
		"parking", "car", "vehicle", "transport", "transportation", "shuttle", "bus", "commute",
		"gas", "local_parking", "directions_car", "directions_bus",
		"xe", "gửi xe", "bãi xe", "xe đưa đón", "đưa đón", "xăng xe",
	}},
	{Entertainment, []string{
		"entertainment", "party", "parties", "game", "games", "sport", "sports", "gym", "fitness",
		"happy hour", "snack", "snacks", "pantry", "club", "music", "celebration", "sports_esports",
		"giải trí", "tiệc", "thể thao", "câu lạc bộ", "liên hoan",
	}},
	{Favorite, []string{
		"favorite", "favourite", "heart", "love", "like", "perk", "perks", "welfare",
		"yêu thích", "phúc lợi",
	}},
	{Housing, []string{
		"housing", "house", "home", "accommodation", "dormitory", "apartment", "rent", "home_work",
		"nhà ở", "chỗ ở", "ký túc xá", "hỗ trợ nhà ở", "nhà",
	}},
	{Check, []string{
		"check", "done", "ok", "check_circle", "other", "others", "khác",
	}},
}

// textFallbacks are scanned in order when a benefit only carries the
// editor's placeholder key.
var textFallbacks = []struct {
	id       ID
	keywords []string
}{
	{Money, []string{"lương", "thưởng"}},
	{Health, []string{"bảo hiểm"}},
	{Training, []string{"đào tạo"}},
	{Travel, []string{"du lịch"}},
	{Parking, []string{"xe"}},
}
