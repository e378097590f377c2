package bible

import "fmt"

// Commandment is one of the Ten Commandments as given in Exodus 20 (KRV).
type Commandment struct {
	Number     int    `json:"number"`
	Title      string `json:"title"`
	Text       string `json:"text"`
	Chapter    int    `json:"chapter"`
	FirstVerse int    `json:"firstVerse"`
	LastVerse  int    `json:"lastVerse"`
}

const commandmentsBook = "EXO"

var commandments = []Commandment{
	{Number: 1, Title: "제1계명", Chapter: 20, FirstVerse: 3, LastVerse: 3,
		Text: "너는 나 외에는 다른 신들을 네게 있게 말지니라"},
	{Number: 2, Title: "제2계명", Chapter: 20, FirstVerse: 4, LastVerse: 6,
		Text: "너를 위하여 새긴 우상을 만들지 말고 또 위로 하늘에 있는 것이나 아래로 땅에 있는 것이나 땅 아래 물 속에 있는 것의 아무 형상이든지 만들지 말며 그것들에게 절하지 말며 그것들을 섬기지 말라 나 여호와 너의 하나님은 질투하는 하나님인즉 나를 미워하는 자의 죄를 갚되 아비의 죄를 자손 삼사 대까지 이르게 하거니와 나를 사랑하고 내 계명을 지키는 자에게는 천 대까지 은혜를 베푸느니라"},
	{Number: 3, Title: "제3계명", Chapter: 20, FirstVerse: 7, LastVerse: 7,
		Text: "너는 너의 하나님 여호와의 이름을 망령되이 일컫지 말라 나 여호와는 나의 이름을 망령되이 일컫는 자를 죄 없다 하지 아니하리라"},
	{Number: 4, Title: "제4계명", Chapter: 20, FirstVerse: 8, LastVerse: 11,
		Text: "안식일을 기억하여 거룩히 지키라 엿새 동안은 힘써 네 모든 일을 행할 것이나 제칠일은 너의 하나님 여호와의 안식일인즉 너나 네 아들이나 네 딸이나 네 남종이나 네 여종이나 네 육축이나 네 문 안에 유하는 객이라도 아무 일도 하지 말라 이는 엿새 동안에 나 여호와가 하늘과 땅과 바다와 그 가운데 모든 것을 만들고 제칠일에 쉬었음이라 그러므로 나 여호와가 안식일을 복되게 하여 그 날을 거룩하게 하였느니라"},
	{Number: 5, Title: "제5계명", Chapter: 20, FirstVerse: 12, LastVerse: 12,
		Text: "네 부모를 공경하라 그리하면 너의 하나님 나 여호와가 네게 준 땅에서 네 생명이 길리라"},
	{Number: 6, Title: "제6계명", Chapter: 20, FirstVerse: 13, LastVerse: 13,
		Text: "살인하지 말지니라"},
	{Number: 7, Title: "제7계명", Chapter: 20, FirstVerse: 14, LastVerse: 14,
		Text: "간음하지 말지니라"},
	{Number: 8, Title: "제8계명", Chapter: 20, FirstVerse: 15, LastVerse: 15,
		Text: "도적질하지 말지니라"},
	{Number: 9, Title: "제9계명", Chapter: 20, FirstVerse: 16, LastVerse: 16,
		Text: "네 이웃에 대하여 거짓 증거하지 말지니라"},
	{Number: 10, Title: "제10계명", Chapter: 20, FirstVerse: 17, LastVerse: 17,
		Text: "네 이웃의 집을 탐내지 말지니라 네 이웃의 아내나 그의 남종이나 그의 여종이나 그의 소나 그의 나귀나 무릇 네 이웃의 소유를 탐내지 말지니라"},
}

// CommandmentsPassage is the whole passage, "출애굽기 20:1-17".
func CommandmentsPassage() string {
	return formatRange(commandmentsBook, 20, 1, 17)
}

// Commandments returns a copy of the list in order.
func Commandments() []Commandment {
	return append([]Commandment(nil), commandments...)
}

func (c Commandment) Book() string {
	return commandmentsBook
}

// Reference renders "출애굽기 20:3" or "출애굽기 20:4-6".
func (c Commandment) Reference() string {
	return formatRange(commandmentsBook, c.Chapter, c.FirstVerse, c.LastVerse)
}

func formatRange(bookID string, chapter, first, last int) string {
	ref := FormatReference(bookID, chapter, first)
	if ref == "" || last <= first {
		return ref
	}
	return fmt.Sprintf("%s-%d", ref, last)
}
