package taxonomy

// UnclassifiedCategory is the sentinel bucket for candidates whose job title
// could not be auto-categorized. The approval sweep keys on this exact name.
const UnclassifiedCategory = "À classifier"

// Rule maps a set of trigger keywords to one (category, sub-category) pair.
// Declaration order is significant: when two rules score equal, the one
// declared first wins.
type Rule struct {
	Category    string
	SubCategory string
	Keywords    []string
}

// DefaultRules returns the built-in rule table. Each sub-category belongs to
// exactly one category, and keywords are matched as substrings of the
// normalized title.
func DefaultRules() []Rule {
	return []Rule{
		{
			Category:    "Informatique & Tech",
			SubCategory: "Développeur Web",
			Keywords:    []string{"developpeur web", "dev web", "developpeur", "frontend", "backend", "fullstack", "web"},
		},
		{
			Category:    "Informatique & Tech",
			SubCategory: "Développeur Mobile",
			Keywords:    []string{"developpeur mobile", "android", "ios", "flutter", "mobile"},
		},
		{
			Category:    "Informatique & Tech",
			SubCategory: "Administrateur Systèmes & Réseaux",
			Keywords:    []string{"administrateur systemes", "sysadmin", "devops", "reseaux", "systemes"},
		},
		{
			Category:    "Informatique & Tech",
			SubCategory: "Data Analyst",
			Keywords:    []string{"data analyst", "data scientist", "data", "analyste"},
		},
		{
			Category:    "Design & Création",
			SubCategory: "Designer UI/UX",
			Keywords:    []string{"designer ui ux", "ux", "ui", "designer", "webdesigner"},
		},
		{
			Category:    "Design & Création",
			SubCategory: "Graphiste",
			Keywords:    []string{"graphiste", "infographiste", "illustrateur"},
		},
		{
			Category:    "Marketing & Communication",
			SubCategory: "Community Manager",
			Keywords:    []string{"community manager", "community", "reseaux sociaux"},
		},
		{
			Category:    "Marketing & Communication",
			SubCategory: "Chargé de Communication",
			Keywords:    []string{"charge de communication", "communication", "marketing"},
		},
		{
			Category:    "Commercial & Vente",
			SubCategory: "Commercial",
			Keywords:    []string{"commercial", "vendeur", "vente"},
		},
		{
			Category:    "Commercial & Vente",
			SubCategory: "Téléconseiller",
			Keywords:    []string{"teleconseiller", "centre d appel", "call center"},
		},
		{
			Category:    "Administration & RH",
			SubCategory: "Assistant Administratif",
			Keywords:    []string{"assistant administratif", "assistante", "secretaire", "administratif"},
		},
		{
			Category:    "Administration & RH",
			SubCategory: "Chargé de Recrutement",
			Keywords:    []string{"charge de recrutement", "recrutement", "rh"},
		},
		{
			Category:    "Gestion & Management",
			SubCategory: "Chef de Projet",
			Keywords:    []string{"chef de projet", "projet", "product owner", "scrum"},
		},
		{
			Category:    "Gestion & Management",
			SubCategory: "Comptable",
			Keywords:    []string{"comptable", "comptabilite", "finance"},
		},
		{
			Category:    "Bâtiment & Travaux",
			SubCategory: "Ouvrier de Chantier",
			Keywords:    []string{"chef de chantier", "chantier", "macon", "ouvrier"},
		},
		{
			Category:    "Restauration & Hôtellerie",
			SubCategory: "Cuisinier",
			Keywords:    []string{"chef de cuisine", "cuisinier", "cuisine", "commis"},
		},
		{
			Category:    "Restauration & Hôtellerie",
			SubCategory: "Serveur",
			Keywords:    []string{"serveur", "serveuse", "barman"},
		},
		{
			Category:    "Transport & Logistique",
			SubCategory: "Chauffeur",
			Keywords:    []string{"chauffeur", "livreur", "conducteur"},
		},
		{
			Category:    "Transport & Logistique",
			SubCategory: "Magasinier",
			Keywords:    []string{"magasinier", "logistique", "cariste"},
		},
	}
}
