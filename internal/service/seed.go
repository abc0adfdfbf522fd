package service

import (
	"mypage/profilehub/internal/model"
)

const avatarBase = "https://api.dicebear.com/7.x/avataaars/svg?seed="

func defaultProfile() model.Profile {
	return model.Profile{
		Name:      "Иван Иванов",
		Status:    "Жизнь хороша! 🚀",
		Avatar:    avatarBase + "Ivan",
		BirthDate: "15 марта 1995",
		City:      "Москва",
		Education: "МГУ им. М.В. Ломоносова",
		Work:      "Google",
		Phone:     "+7 (999) 123-45-67",
		About:     "Люблю программирование и путешествия",
	}
}

// defaultPosts seeds the wall relative to now so a fresh page reads
// "1 час назад" and "3 часа назад" until its first save.
func defaultPosts(now int64) []model.Post {
	return []model.Post{
		{
			ID:        "seed-post-1",
			Text:      "Отличный день сегодня! ☀️",
			Likes:     15,
			CreatedAt: now - 1*60*60*1000,
			Comments:  []model.Comment{},
		},
		{
			ID:        "seed-post-2",
			Text:      "Запустил новый проект, делюсь впечатлениями 🚀",
			Likes:     23,
			Liked:     true,
			CreatedAt: now - 3*60*60*1000,
			Comments: []model.Comment{{
				ID:        "seed-comment-1",
				Author:    "Анна Смирнова",
				Avatar:    avatarBase + "Anna",
				Text:      "Поздравляю! 🎉",
				CreatedAt: now - 2*60*60*1000,
			}},
		},
	}
}

func defaultFriends() []model.Friend {
	return []model.Friend{
		{ID: "seed-friend-anna", Name: "Анна Смирнова", Avatar: avatarBase + "Anna", City: "Москва", Online: true},
		{ID: "seed-friend-petr", Name: "Петр Иванов", Avatar: avatarBase + "Petr", City: "Санкт-Петербург"},
		{ID: "seed-friend-maria", Name: "Мария Петрова", Avatar: avatarBase + "Maria", City: "Казань", Online: true},
		{ID: "seed-friend-alexey", Name: "Алексей Сидоров", Avatar: avatarBase + "Alexey", City: "Новосибирск"},
	}
}
