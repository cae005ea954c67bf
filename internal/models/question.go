package models

import "strings"

// Question is a multiple-choice question generated for a material. The correct
// answer is stored as the option text, not an index, so grading compares option
// strings.
type Question struct {
	ID            string   `bson:"_id,omitempty" json:"id"`
	MaterialID    string   `bson:"material_id" json:"material_id"`
	UserID        string   `bson:"user_id" json:"user_id"`
	QuestionText  string   `bson:"question_text" json:"question_text"`
	Options       []string `bson:"options" json:"options"`
	CorrectAnswer string   `bson:"correct_answer" json:"correct_answer"`
	Explanation   string   `bson:"explanation" json:"explanation"`
	Category      string   `bson:"category" json:"category"`
}

// OptionLetter maps a zero-based option index to its presentation letter:
// 0 -> "A", 1 -> "B", and so on.
func OptionLetter(index int) string {
	return string(rune('A' + index))
}

// LetterIndex maps an option letter back to its zero-based index. Letters are
// case-insensitive; anything that is not a single A-Z character is rejected.
func LetterIndex(letter string) (int, bool) {
	s := strings.ToUpper(strings.TrimSpace(letter))
	if len(s) != 1 {
		return 0, false
	}
	c := s[0]
	if c < 'A' || c > 'Z' {
		return 0, false
	}
	return int(c - 'A'), true
}

// CorrectLetter returns the letter of the first option whose text equals the
// stored correct answer. Duplicate option strings resolve to the first match.
func (q *Question) CorrectLetter() (string, bool) {
	for i, opt := range q.Options {
		if opt == q.CorrectAnswer {
			return OptionLetter(i), true
		}
	}
	return "", false
}

// View renders the question for a quiz taker under the given 1-based number.
// The correct answer and explanation are not included.
func (q *Question) View(number int) QuestionView {
	options := make([]OptionView, 0, len(q.Options))
	for i, text := range q.Options {
		options = append(options, OptionView{Letter: OptionLetter(i), Text: text})
	}
	return QuestionView{
		QuestionNumber: number,
		ID:             q.ID,
		QuestionText:   q.QuestionText,
		Options:        options,
		Category:       q.Category,
	}
}
