package models

import "gorm.io/gorm"

func strPtr(s string) *string { return &s }

// SeedDefaultData fills each content table with starter rows, but only when
// that table is empty. Tables that already hold data are left untouched.
func SeedDefaultData(db *gorm.DB) error {
	if err := seedIfEmpty(db, &Member{}, defaultMembers()); err != nil {
		return err
	}
	if err := seedIfEmpty(db, &Publication{}, defaultPublications()); err != nil {
		return err
	}
	if err := seedIfEmpty(db, &News{}, defaultNews()); err != nil {
		return err
	}
	if err := seedIfEmpty(db, &SiteContent{}, defaultSiteContent()); err != nil {
		return err
	}
	return seedIfEmpty(db, &Lecture{}, defaultLectures())
}

func seedIfEmpty[T any](db *gorm.DB, model *T, rows []T) error {
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 || len(rows) == 0 {
		return nil
	}
	return db.Create(&rows).Error
}

func defaultMembers() []Member {
	return []Member{
		{
			Name:     "Prof. Fábio Delolo",
			RolePT:   "Pesquisador Principal",
			RoleEN:   "Principal Investigator",
			BioPT:    "Coordenador do grupo, com pesquisa em catálise e química verde.",
			BioEN:    "Group leader working on catalysis and green chemistry.",
			ImageURL: "",
			Type:     MemberTypePI,
			Email:    strPtr("contato@delologroup.com"),
		},
		{
			Name:            "Ana Souza",
			RolePT:          "Doutoranda",
			RoleEN:          "PhD Student",
			BioPT:           "Estuda catalisadores heterogêneos para conversão de biomassa.",
			BioEN:           "Studies heterogeneous catalysts for biomass conversion.",
			Type:            MemberTypeCurrent,
			OrderIndex:      1,
			SupervisionType: SupervisionAdvisor,
		},
		{
			Name:             "Carlos Lima",
			RolePT:           "Mestre",
			RoleEN:           "MSc",
			BioPT:            "Ex-aluno de mestrado do grupo.",
			BioEN:            "Former MSc student of the group.",
			Type:             MemberTypeAlumni,
			OrderIndex:       1,
			SupervisionType:  SupervisionAdvisor,
			CurrentWorkplace: strPtr("Petrobras"),
		},
	}
}

func defaultPublications() []Publication {
	return []Publication{
		{
			TitlePT: "Catálise sustentável para a conversão de biomassa",
			TitleEN: "Sustainable catalysis for biomass conversion",
			Journal: "Green Chemistry",
			Year:    2024,
			DOI:     "10.1039/example",
			Authors: "Delolo, F.; Souza, A.",
			Volume:  strPtr("26"),
			Pages:   strPtr("1-12"),
			PubType: strPtr(PubTypeArticle),
		},
	}
}

func defaultNews() []News {
	return []News{
		{
			TitlePT:   "Bem-vindo ao novo site do grupo",
			TitleEN:   "Welcome to the group's new website",
			ContentPT: "O Grupo de Pesquisa Delolo lança seu novo site.",
			ContentEN: "The Delolo Research Group launches its new website.",
			Date:      "2025-01-15",
			Category:  strPtr("general"),
			Status:    NewsStatusPublished,
		},
	}
}

func defaultSiteContent() []SiteContent {
	return []SiteContent{
		{
			Key:       "home_hero",
			ContentPT: "O Grupo de Pesquisa Delolo atua em catálise, química verde e na transformação do conhecimento científico em soluções globais.",
			ContentEN: "Delolo Research Group focuses on catalysis, green chemistry, and the transformation of scientific knowledge into global solutions.",
		},
		{
			Key:       "research_intro",
			ContentPT: "Nossas linhas de pesquisa.",
			ContentEN: "Our research lines.",
		},
		{
			Key:       "contact_info",
			ContentPT: "contato@delologroup.com",
			ContentEN: "contato@delologroup.com",
		},
	}
}

func defaultLectures() []Lecture {
	return []Lecture{
		{
			Year:        "2024",
			Institution: "Universidade de São Paulo",
			CountryPT:   strPtr("Brasil"),
			CountryEN:   strPtr("Brazil"),
			TitlePT:     strPtr("Catálise e sustentabilidade"),
			TitleEN:     strPtr("Catalysis and sustainability"),
		},
	}
}
