package domain

// MaturityLevelInfo is one of the five ordinal career-stage classifications.
// The catalog is immutable reference data; levels are only looked up, never
// created at runtime.
type MaturityLevelInfo struct {
	Level           int      `json:"level"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Characteristics []string `json:"characteristics"`
}

// MaturityTips is the per-level coaching focus shown next to an assessed
// mentee's plan.
type MaturityTips struct {
	Title  string   `json:"title"`
	Points []string `json:"points"`
}

var MaturityLevels = []MaturityLevelInfo{
	{
		Level:       1,
		Name:        "Júnior I (Iniciante)",
		Description: "Profissional em início de carreira, focado em aprender as tarefas básicas e se integrar à equipe.",
		Characteristics: []string{
			"Dependente de instruções detalhadas",
			"Conhecimento técnico básico",
			"Focado em tarefas individuais",
			"Baixa autonomia",
		},
	},
	{
		Level:       2,
		Name:        "Júnior II (Em Desenvolvimento)",
		Description: "Começa a ganhar autonomia em tarefas conhecidas e a entender melhor o negócio.",
		Characteristics: []string{
			"Executa tarefas com supervisão moderada",
			"Busca ativamente por conhecimento",
			"Começa a colaborar com a equipe",
			"Desenvolve habilidades de comunicação",
		},
	},
	{
		Level:       3,
		Name:        "Pleno I (Autônomo)",
		Description: "Possui autonomia para executar tarefas complexas e começa a ter uma visão mais ampla dos projetos.",
		Characteristics: []string{
			"Autônomo na maioria das tarefas",
			"Contribui com ideias e soluções",
			"Compreende o impacto do seu trabalho",
			"Começa a mentorar colegas menos experientes",
		},
	},
	{
		Level:       4,
		Name:        "Pleno II (Referência)",
		Description: "É uma referência técnica em sua área e consegue lidar com desafios de alta complexidade.",
		Characteristics: []string{
			"Domínio técnico aprofundado",
			"Resolve problemas complexos de forma independente",
			"Influencia positivamente a equipe",
			"Visão sistêmica dos projetos",
		},
	},
	{
		Level:       5,
		Name:        "Sênior (Estrategista)",
		Description: "Atua com visão estratégica, lidera iniciativas e mentora outros profissionais, influenciando as decisões técnicas da empresa.",
		Characteristics: []string{
			"Visão estratégica e de negócio",
			"Lidera projetos e iniciativas",
			"Mentora múltiplos profissionais",
			"Promove inovações e melhorias contínuas",
		},
	},
}

var maturityTips = map[int]MaturityTips{
	1: {
		Title: "Foco no Quartil 1: Fundamentos",
		Points: []string{
			"Fortalecer a comunicação com a equipe.",
			"Aprimorar o trabalho em equipe e a colaboração.",
			"Desenvolver a habilidade de resolução de problemas.",
			"Participar de treinamentos e atividades para desenvolver habilidades técnicas.",
		},
	},
	2: {
		Title: "Foco no Quartil 2: Proatividade e Adaptação",
		Points: []string{
			"Incentivar a proatividade na busca por novas soluções.",
			"Trabalhar a adaptação a mudanças de escopo e prioridades.",
			"Participar ativamente de projetos inovadores.",
			"Buscar e aproveitar oportunidades de desenvolvimento profissional.",
		},
	},
	3: {
		Title: "Foco no Quartil 3: Excelência e Liderança",
		Points: []string{
			"Buscar a excelência em todas as áreas de atuação.",
			"Promover a inovação no dia a dia.",
			"Desenvolver talentos e habilidades de liderança.",
			"Participar de programas de mentoria e buscar desafios que estimulem o crescimento.",
		},
	},
	4: {
		Title: "Foco no Quartil 4: Performance e Crescimento Contínuo",
		Points: []string{
			"Manter um alto nível de performance e entrega.",
			"Promover uma cultura de aprendizado contínuo.",
			"Buscar constantemente novas oportunidades de crescimento.",
			"Participar de projetos desafiadores e celebrar as conquistas da equipe.",
		},
	},
	// Level 5 shares the quartile-4 focus.
	5: {
		Title: "Foco no Quartil 4: Performance e Crescimento Contínuo",
		Points: []string{
			"Manter um alto nível de performance e entrega.",
			"Promover uma cultura de aprendizado contínuo.",
			"Buscar constantemente novas oportunidades de crescimento.",
			"Participar de projetos desafiadores e celebrar as conquistas da equipe.",
		},
	},
}

// LevelByNumber looks the catalog up by ordinal level.
func LevelByNumber(level int) (MaturityLevelInfo, bool) {
	for _, l := range MaturityLevels {
		if l.Level == level {
			return l, true
		}
	}
	return MaturityLevelInfo{}, false
}

// TipsForLevel returns the coaching focus for an assigned level.
func TipsForLevel(level int) (MaturityTips, bool) {
	tips, ok := maturityTips[level]
	return tips, ok
}

// ScoreAnswers sums the mentor's assessment and expresses it as a percentage
// of the maximum attainable score.
func ScoreAnswers(answers []int) (total int, percentage float64) {
	for _, a := range answers {
		total += a
	}
	max := len(SurveyQuestions) * AnswerMax
	return total, float64(total) / float64(max) * 100
}

// SuggestLevel converts a completed mentor assessment into a maturity level.
// Thresholds are evaluated high-to-low with strict comparisons, so boundary
// percentages fall to the lower band.
func SuggestLevel(answers []int) (MaturityLevelInfo, error) {
	if err := ValidateAnswers(answers); err != nil {
		return MaturityLevelInfo{}, err
	}
	_, percentage := ScoreAnswers(answers)

	level := 1
	switch {
	case percentage > 85:
		level = 5
	case percentage > 70:
		level = 4
	case percentage > 50:
		level = 3
	case percentage > 30:
		level = 2
	}

	info, _ := LevelByNumber(level)
	return info, nil
}
