package domain

// SurveyQuestion is one item of the fixed maturity questionnaire.
type SurveyQuestion struct {
	ID       int    `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category"`
}

// Answer scale bounds for the 4-point Likert instrument.
const (
	AnswerMin = 1
	AnswerMax = 4
)

// SurveyQuestions is the fixed 10-question instrument used both for mentee
// self-assessment and for the mentor's assessment of a mentee.
var SurveyQuestions = []SurveyQuestion{
	{ID: 1, Text: "Eu defino metas claras e alcançáveis para meu desenvolvimento profissional.", Category: "Planejamento"},
	{ID: 2, Text: "Eu busco feedback ativamente e o utilizo para melhorar.", Category: "Autodesenvolvimento"},
	{ID: 3, Text: "Eu comunico minhas ideias de forma clara e confiante em reuniões.", Category: "Comunicação"},
	{ID: 4, Text: "Eu colaboro efetivamente com meus colegas para atingir objetivos comuns.", Category: "Trabalho em Equipe"},
	{ID: 5, Text: "Eu assumo a responsabilidade por minhas tarefas e entrego resultados de alta qualidade.", Category: "Responsabilidade"},
	{ID: 6, Text: "Eu consigo me adaptar a mudanças em projetos ou prioridades.", Category: "Adaptabilidade"},
	{ID: 7, Text: "Eu procuro oportunidades para aprender novas habilidades, mesmo fora da minha área de atuação.", Category: "Aprendizado Contínuo"},
	{ID: 8, Text: "Eu ajudo a motivar meus colegas e contribuo para um ambiente de trabalho positivo.", Category: "Liderança"},
	{ID: 9, Text: "Eu gerencio meu tempo de forma eficaz para cumprir prazos.", Category: "Organização"},
	{ID: 10, Text: "Eu tomo a iniciativa de resolver problemas em vez de esperar que me digam o que fazer.", Category: "Proatividade"},
}

// ValidateAnswers enforces the all-or-nothing completeness gate: exactly one
// answer per question, each within the Likert scale.
func ValidateAnswers(answers []int) error {
	if len(answers) != len(SurveyQuestions) {
		return NewError(ErrCodeInvalid, "survey requires exactly one answer per question")
	}
	for _, a := range answers {
		if a < AnswerMin || a > AnswerMax {
			return NewError(ErrCodeInvalid, "survey answers must be between 1 and 4")
		}
	}
	return nil
}
