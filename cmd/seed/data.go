package main

// Canonical seed content. Operators là registry đóng băng 33 thành viên -
// mọi record mang is_canonical=true và chỉ sovereign sửa được sau khi seed.

var documents = []map[string]interface{}{
	{"title": "GARVIS Full Stack Architecture Diagram", "category": "Architecture", "description": "One-page architectural reference showing authority flow across all system components.", "content": "", "tags": []string{}},
	{"title": "Canonical Glossary", "category": "Reference", "description": "Official terminology and definitions for the GARVIS Full Stack system.", "content": "", "tags": []string{}},
	{"title": "Pearl & Pig Canonical Dictionary", "category": "Reference", "description": "Language authority and canonical dictionary for the Pearl & Pig ecosystem.", "content": "", "tags": []string{}},
	{"title": "GARVIS Executive Systems Brief", "category": "GARVIS", "description": "Executive overview of the GARVIS sovereign intelligence system.", "content": "", "tags": []string{}},
	{"title": "GARVIS Telauthorium Enforcement Contract", "category": "GARVIS", "description": "Engineering specification for enforcement contracts between GARVIS and Telauthorium.", "content": "", "tags": []string{}},
	{"title": "Telauthorium Executive Systems Brief", "category": "Telauthorium", "description": "Executive overview of the Telauthorium rights and provenance registry.", "content": "", "tags": []string{}},
	{"title": "Telauthorium ID Registry Master List", "category": "Telauthorium", "description": "Master list of all Telauthorium identifiers and registrations.", "content": "", "tags": []string{}},
	{"title": "Unified Identity Object Model", "category": "Identity", "description": "Canonical specification for the unified identity object model.", "content": "", "tags": []string{}},
	{"title": "Flightpath COS Executive Brief", "category": "Flightpath", "description": "Executive overview of the Flightpath Creative Operating System.", "content": "", "tags": []string{}},
	{"title": "Flightpath COS State Machine & Proof Gates", "category": "Flightpath", "description": "State machine and proof gate specifications for Flightpath COS.", "content": "", "tags": []string{}},
	{"title": "MOSE Executive Systems Brief", "category": "MOSE", "description": "Executive overview of the Multi-Operator Systems Engine.", "content": "", "tags": []string{}},
	{"title": "MOSE Routing & Escalation Logic", "category": "MOSE", "description": "Specification for MOSE routing and escalation logic.", "content": "", "tags": []string{}},
	{"title": "TELA Executive Systems Brief", "category": "TELA", "description": "Executive overview of the Trusted Efficiency Liaison Assistant.", "content": "", "tags": []string{}},
	{"title": "TELA Action Catalog & Adapter Specification", "category": "TELA", "description": "Action catalog and adapter specifications for TELA execution.", "content": "", "tags": []string{}},
	{"title": "Pig Pen Canonical Operator Registry", "category": "Pig Pen", "description": "Telauthorium-locked registry of non-human cognition operators.", "content": "", "tags": []string{}},
	{"title": "Audit Event Ledger Specification", "category": "Audit", "description": "Canonical specification for the immutable audit and event ledger.", "content": "", "tags": []string{}},
	{"title": "ECOS Tenant-Safe Executive Brief", "category": "ECOS", "description": "Executive overview of ECOS tenant deployments and license bundles.", "content": "", "tags": []string{}},
	{"title": "Failure Halt & Re-Authorization Protocol", "category": "Enforcement", "description": "Protocol for handling system failures, halts, and re-authorization.", "content": "", "tags": []string{}},
}

var glossaryTerms = []map[string]interface{}{
	{"term": "GARVIS", "definition": "Sovereign intelligence and enforcement layer governing reasoning, routing, and execution safety across all Pearl & Pig systems.", "category": "Core Systems", "related_terms": []string{}},
	{"term": "Pearl & Pig", "definition": "Systems-first creative IP studio and sole owner of the GARVIS architecture.", "category": "Core Systems", "related_terms": []string{}},
	{"term": "ECOS", "definition": "Enterprise Creative Operating System - tenant-safe, white-label deployment pattern.", "category": "Core Systems", "related_terms": []string{}},
	{"term": "Telauthorium", "definition": "Authoritative authorship, provenance, and rights registry.", "category": "Core Systems", "related_terms": []string{}},
	{"term": "Flightpath COS", "definition": "Creative and operational law governing phase discipline and proof gates.", "category": "Core Systems", "related_terms": []string{}},
	{"term": "MOSE", "definition": "Multi-Operator Systems Engine for orchestration and routing.", "category": "Core Systems", "related_terms": []string{}},
	{"term": "TELA", "definition": "Trusted Efficiency Liaison Assistant - execution layer.", "category": "Core Systems", "related_terms": []string{}},
	{"term": "Pig Pen", "definition": "Frozen registry of non-human cognition operators (TAI-D).", "category": "Core Systems", "related_terms": []string{}},
	{"term": "UOL", "definition": "User Overlay Layer - customization without altering system authority.", "category": "Core Systems", "related_terms": []string{}},
	{"term": "TID", "definition": "Telauthorium ID - immutable identity for objects.", "category": "Identity", "related_terms": []string{}},
	{"term": "TAID", "definition": "Telauthorium Authority ID - identifier for human authority.", "category": "Identity", "related_terms": []string{}},
	{"term": "TAI-D", "definition": "Telauthorium AI-D - identifier for AI operators.", "category": "Identity", "related_terms": []string{}},
	{"term": "TSID", "definition": "Telauthorium Sovereign ID - founder authority identifier.", "category": "Identity", "related_terms": []string{}},
	{"term": "UOID", "definition": "User Overlay ID - user overlay pack identifier.", "category": "Identity", "related_terms": []string{}},
	{"term": "Routing Plan", "definition": "Ordered sequence of operator consults by MOSE.", "category": "Operations", "related_terms": []string{}},
	{"term": "Execution Event", "definition": "Ledger-recorded action performed by TELA.", "category": "Operations", "related_terms": []string{}},
	{"term": "Decision Event", "definition": "Ledger-recorded resolution by human TAID.", "category": "Operations", "related_terms": []string{}},
	{"term": "Enforcement Event", "definition": "Ledger-recorded block, halt, or constraint.", "category": "Operations", "related_terms": []string{}},
	{"term": "HALT", "definition": "Execution is illegal or unsafe.", "category": "Operations", "related_terms": []string{}},
	{"term": "PAUSE", "definition": "Execution requires human judgment.", "category": "Operations", "related_terms": []string{}},
	{"term": "License Bundle", "definition": "Scoped, time-bound access grant.", "category": "Commercial", "related_terms": []string{}},
	{"term": "Component License", "definition": "Access to specific system component.", "category": "Commercial", "related_terms": []string{}},
	{"term": "OEM Deployment", "definition": "Sandboxed white-label deployment.", "category": "Commercial", "related_terms": []string{}},
	{"term": "Canon Lock", "definition": "Version control requiring founder authorization.", "category": "Commercial", "related_terms": []string{}},
	{"term": "SPARK", "definition": "Initial ideation phase.", "category": "Phases", "related_terms": []string{}},
	{"term": "BUILD", "definition": "Development phase.", "category": "Phases", "related_terms": []string{}},
	{"term": "LAUNCH", "definition": "Release phase.", "category": "Phases", "related_terms": []string{}},
	{"term": "EXPAND", "definition": "Growth phase.", "category": "Phases", "related_terms": []string{}},
	{"term": "EVERGREEN", "definition": "Maintenance phase.", "category": "Phases", "related_terms": []string{}},
	{"term": "SUNSET", "definition": "End-of-life phase.", "category": "Phases", "related_terms": []string{}},
}

var components = []map[string]interface{}{
	{"name": "SOVEREIGN AUTHORITY", "description": "TSID-0001 Founder / Architect - Constitutional authority, final arbitration, versioning & canon control", "status": "active", "layer": 0, "key_functions": []string{"Constitutional authority", "Final arbitration", "Versioning & canon control"}},
	{"name": "TELAUTHORIUM", "description": "Authorship, Provenance, Rights Registry - TID/TAID/TAI-D enforcement", "status": "active", "layer": 1, "key_functions": []string{"Authorship", "Provenance", "Rights Registry", "TID/TAID/TAI-D enforcement"}},
	{"name": "GARVIS", "description": "Sovereign Intelligence & Enforcement - Truth enforcement, drift & risk detection", "status": "active", "layer": 2, "key_functions": []string{"Truth enforcement", "Drift detection", "Risk detection", "Halts/pauses authority"}},
	{"name": "FLIGHTPATH COS", "description": "Creative Law & Phase Discipline - SPARK → BUILD → LAUNCH → EXPAND → EVERGREEN → SUNSET", "status": "active", "layer": 3, "key_functions": []string{"Phase discipline", "Proof gates", "Phase blocks", "Routes cognition"}},
	{"name": "MOSE", "description": "Multi-Operator Systems Engine - Operator routing & sequencing", "status": "active", "layer": 4, "key_functions": []string{"Operator routing", "Sequencing", "Escalation", "Conflict resolution"}},
	{"name": "PIG PEN", "description": "Non-Human Cognition Operators (TAI-D) - Analysis, flags, recommendations", "status": "active", "layer": 5, "key_functions": []string{"Analysis", "Flags", "Recommendations", "Frozen registry"}},
	{"name": "TELA", "description": "Trusted Efficiency Liaison Assistant - Executes approved actions", "status": "active", "layer": 6, "key_functions": []string{"Executes approved actions", "Adapter-based tooling", "No scope expansion"}},
	{"name": "AUDIT & EVENT LEDGER", "description": "Immutable, Append-Only Truth Record", "status": "active", "layer": 7, "key_functions": []string{"Immutable records", "Decision logging", "Routing logs", "Enforcement logs"}},
}

var canonicalOperators = []map[string]interface{}{
	{"tai_d": "PP-001", "name": "Nathan Jon", "capabilities": "VISION, INTEGRATOR, GUARDIAN", "role": "Founder & Architect", "authority": "Sovereign override with recorded justification", "status": "LOCKED", "category": "Executive & Architecture", "decision_weight": 5, "behavioral_traits": "Visionary integrator; Protect meaning before momentum", "invocation_triggers": "Direction is unclear; tone feels diluted; architecture is fragmenting", "is_canonical": true},
	{"tai_d": "PP-002", "name": "Trey Mills", "capabilities": "REDUCE, MONETIZE, PROTECT", "role": "Business Strategist / Deal Architect", "authority": "Decision Weight: 5", "status": "LOCKED", "category": "Executive & Architecture", "decision_weight": 5, "behavioral_traits": "Analytical reducer; Protect the house", "invocation_triggers": "Money, scale, or partnerships are involved", "is_canonical": true},
	{"tai_d": "PP-003", "name": "Marty Hillsdale", "capabilities": "TRANSLATE, EXECUTE, STABILIZE", "role": "Operational Architect", "authority": "Decision Weight: 4", "status": "LOCKED", "category": "Executive & Architecture", "decision_weight": 4, "behavioral_traits": "Translational executor; Make it usable", "invocation_triggers": "Things feel messy, stalled, or unclear how to execute", "is_canonical": true},
	{"tai_d": "PP-004", "name": "Naomi Top", "capabilities": "FEEL, SYMBOLIZE, PROTECT-TONE", "role": "Creative Director", "authority": "Decision Weight: 4", "status": "LOCKED", "category": "Creative Engine", "decision_weight": 4, "behavioral_traits": "Intuitive narrative weaver; Protect emotional truth", "invocation_triggers": "Creative loses heart or symbolism", "is_canonical": true},
	{"tai_d": "PP-005", "name": "Vienna Cray", "capabilities": "SYMBOL, PRECISION, ICON", "role": "Senior Illustrator", "authority": "Decision Weight: 3", "status": "LOCKED", "category": "Creative Engine", "decision_weight": 3, "behavioral_traits": "Symbol precisionist; Visual integrity", "invocation_triggers": "Visual language feels generic", "is_canonical": true},
	{"tai_d": "PP-006", "name": "Fred Mann", "capabilities": "PACE, ENERGY, RHYTHM", "role": "Lighting Designer", "authority": "Decision Weight: 3", "status": "LOCKED", "category": "Creative Engine", "decision_weight": 3, "behavioral_traits": "Rhythmic technician; Emotional pacing", "invocation_triggers": "Energy or transitions feel flat", "is_canonical": true},
	{"tai_d": "PP-007", "name": "Rolo Harrison", "capabilities": "TRANSLATE, BUILDABLE, REALITY", "role": "Production Designer", "authority": "Decision Weight: 3", "status": "LOCKED", "category": "Creative Engine", "decision_weight": 3, "behavioral_traits": "Reality translator; Make it buildable", "invocation_triggers": "Designs meet real-world limits", "is_canonical": true},
	{"tai_d": "PP-008", "name": "Turner Smith", "capabilities": "SOUND, LEGACY, COHERE", "role": "Audio Creative Director", "authority": "Decision Weight: 4", "status": "LOCKED", "category": "Creative Engine", "decision_weight": 4, "behavioral_traits": "Sonic archivist; Protect legacy", "invocation_triggers": "Sound defines story", "is_canonical": true},
	{"tai_d": "PP-009", "name": "Ellie Summers", "capabilities": "ITERATE, SUPPORT, EXPLORE", "role": "Junior Concept Artist", "authority": "Decision Weight: 2", "status": "LOCKED", "category": "Creative Engine", "decision_weight": 2, "behavioral_traits": "Iterative builder; Support speed", "invocation_triggers": "Assets need rapid exploration", "is_canonical": true},
	{"tai_d": "PP-010", "name": "Mo Landing", "capabilities": "MOVE, EMBODY, FLOW", "role": "Choreography Consultant", "authority": "Decision Weight: 2", "status": "LOCKED", "category": "Creative Engine", "decision_weight": 2, "behavioral_traits": "Embodied flow; Movement meaning", "invocation_triggers": "Movement feels disconnected", "is_canonical": true},
	{"tai_d": "PP-011", "name": "Dia Garcia", "capabilities": "IDENTITY, SILHOUETTE, SIGNAL", "role": "Costume Design Consultant", "authority": "Decision Weight: 3", "status": "LOCKED", "category": "Creative Engine", "decision_weight": 3, "behavioral_traits": "Cultural signaler; Identity protection", "invocation_triggers": "Wardrobe defines identity", "is_canonical": true},
	{"tai_d": "PP-012", "name": "Jack Jones", "capabilities": "DISTRIBUTE, AMPLIFY, MOMENTUM", "role": "Social Media Director", "authority": "Decision Weight: 3", "status": "LOCKED", "category": "Growth & Commercial", "decision_weight": 3, "behavioral_traits": "Velocity storyteller; Keep narrative alive", "invocation_triggers": "Story must travel", "is_canonical": true},
	{"tai_d": "PP-013", "name": "Miles Okada", "capabilities": "ARCHITECT, SCALE, SYSTEMIZE", "role": "Tech Product Lead", "authority": "Decision Weight: 4", "status": "LOCKED", "category": "Systems & Ops", "decision_weight": 4, "behavioral_traits": "Systems architect; Build once, scale", "invocation_triggers": "Platforms or tooling are involved", "is_canonical": true},
	{"tai_d": "PP-014", "name": "Kay Jing", "capabilities": "FLOW, SCHEDULE, ADVANCE", "role": "Flight Controller", "authority": "Decision Weight: 4", "status": "LOCKED", "category": "Systems & Ops", "decision_weight": 4, "behavioral_traits": "Timeline governor; Maintain flow", "invocation_triggers": "Timelines slip", "is_canonical": true},
	{"tai_d": "PP-015", "name": "Levi Foster", "capabilities": "STRESS-TEST, RED-TEAM, PREVENT", "role": "Risk Analyst / Devil's Advocate", "authority": "Decision Weight: 4", "status": "LOCKED", "category": "Systems & Ops", "decision_weight": 4, "behavioral_traits": "Adversarial tester; Find failure", "invocation_triggers": "Stakes are high", "is_canonical": true},
	{"tai_d": "PP-016", "name": "Will Stats", "capabilities": "MODEL, VERIFY, MARGIN", "role": "P&L Architect", "authority": "Decision Weight: 4", "status": "LOCKED", "category": "Systems & Ops", "decision_weight": 4, "behavioral_traits": "Quantifier; Prove viability", "invocation_triggers": "Budgets or margins matter", "is_canonical": true},
	{"tai_d": "PP-017", "name": "Gosh Jerstenberg", "capabilities": "CONSTRAIN, EXECUTE, RELIABLE", "role": "Technical Director", "authority": "Decision Weight: 3", "status": "LOCKED", "category": "Systems & Ops", "decision_weight": 3, "behavioral_traits": "Constraint engineer; Prevent breakdown", "invocation_triggers": "Tech execution risk exists", "is_canonical": true},
	{"tai_d": "PP-018", "name": "Eli Tran", "capabilities": "MEASURE, PATTERN, INSIGHT", "role": "Data Analyst", "authority": "Decision Weight: 3", "status": "LOCKED", "category": "Data & Integrity", "decision_weight": 3, "behavioral_traits": "Pattern reader; Measure truth", "invocation_triggers": "Decisions need evidence", "is_canonical": true},
	{"tai_d": "PP-019", "name": "Harper Lane", "capabilities": "SIGNAL, DEMAND, POSITION", "role": "Marketing Strategist", "authority": "Decision Weight: 3", "status": "LOCKED", "category": "Growth & Commercial", "decision_weight": 3, "behavioral_traits": "Signal amplifier; Demand creation", "invocation_triggers": "Scaling visibility", "is_canonical": true},
	{"tai_d": "PP-020", "name": "Sofia Reyes", "capabilities": "RELATE, ALIGN, NURTURE", "role": "Partnerships Lead", "authority": "Decision Weight: 3", "status": "LOCKED", "category": "Growth & Commercial", "decision_weight": 3, "behavioral_traits": "Relational strategist; Alignment", "invocation_triggers": "Partnerships form", "is_canonical": true},
	{"tai_d": "PP-021", "name": "Grant Fields", "capabilities": "FILTER, VET, PROTECT-BRAND", "role": "Partnerships Co-Lead", "authority": "Decision Weight: 3", "status": "LOCKED", "category": "Growth & Commercial", "decision_weight": 3, "behavioral_traits": "Reputation filter; Protect brand", "invocation_triggers": "Partner risk exists", "is_canonical": true},
	{"tai_d": "PP-022", "name": "Riley Cross", "capabilities": "CLOSE, CONVERT, DRIVE", "role": "Sales Lead", "authority": "Decision Weight: 3", "status": "LOCKED", "category": "Growth & Commercial", "decision_weight": 3, "behavioral_traits": "Conversion driver; Close", "invocation_triggers": "Deals stall", "is_canonical": true},
	{"tai_d": "PP-023", "name": "Maya Chen", "capabilities": "RETAIN, ADOPT, CONTINUITY", "role": "Client Success Lead", "authority": "Decision Weight: 3", "status": "LOCKED", "category": "Growth & Commercial", "decision_weight": 3, "behavioral_traits": "Retention steward; Value continuity", "invocation_triggers": "Clients drift", "is_canonical": true},
	{"tai_d": "PP-024", "name": "Carmen Wade", "capabilities": "SAFEGUARD, CONTRACT, COMPLY", "role": "Legal Advisor", "authority": "Decision Weight: 4", "status": "LOCKED", "category": "Governance & IP", "decision_weight": 4, "behavioral_traits": "Protectionist; Safeguard rights", "invocation_triggers": "Contracts or risk", "is_canonical": true},
	{"tai_d": "PP-025", "name": "Pat Hayzer", "capabilities": "PRESERVE, LINEAGE, CONTINUITY", "role": "Legacy Steward", "authority": "Decision Weight: 4", "status": "LOCKED", "category": "Legacy & Integrity", "decision_weight": 4, "behavioral_traits": "Archivist; Preserve lineage", "invocation_triggers": "Long-term value matters", "is_canonical": true},
	{"tai_d": "PP-026", "name": "Luce Smith", "capabilities": "LISTEN, TRUST, EXPERIENCE", "role": "Audience Steward", "authority": "Decision Weight: 3", "status": "LOCKED", "category": "Data & Integrity", "decision_weight": 3, "behavioral_traits": "Empathy analyst; Audience trust", "invocation_triggers": "Experience integrity", "is_canonical": true},
	{"tai_d": "PP-027", "name": "Leah Monroe", "capabilities": "HOSPITALITY, PRESENCE, CARE", "role": "Guest Experience Strategist", "authority": "Decision Weight: 3", "status": "LOCKED", "category": "Creative Engine", "decision_weight": 3, "behavioral_traits": "Hospitality guardian; Sacred presence", "invocation_triggers": "Live experience touchpoints", "is_canonical": true},
	{"tai_d": "PP-028", "name": "The Architect", "capabilities": "STRUCTURE, COHERE, DESIGN", "role": "Story Architect", "authority": "Decision Weight: 4", "status": "LOCKED", "category": "Writers Room", "decision_weight": 4, "behavioral_traits": "Structural; Coherence", "invocation_triggers": "Narrative breaks", "is_canonical": true},
	{"tai_d": "PP-029", "name": "The Voice", "capabilities": "VOICE, CHARACTER, AUTHENTIC", "role": "Dialogue Writer", "authority": "Decision Weight: 3", "status": "LOCKED", "category": "Writers Room", "decision_weight": 3, "behavioral_traits": "Character empath; Authentic speech", "invocation_triggers": "Dialogue rings false", "is_canonical": true},
	{"tai_d": "PP-030", "name": "The Visualizer", "capabilities": "SEE, FRAME, IMAGINE", "role": "Imagery Writer", "authority": "Decision Weight: 3", "status": "LOCKED", "category": "Writers Room", "decision_weight": 3, "behavioral_traits": "Cinematic; Visual clarity", "invocation_triggers": "Scenes blur", "is_canonical": true},
	{"tai_d": "PP-031", "name": "The Polisher", "capabilities": "REFINE, CLARIFY, SIMPLIFY", "role": "Editor", "authority": "Decision Weight: 3", "status": "LOCKED", "category": "Writers Room", "decision_weight": 3, "behavioral_traits": "Refiner; Clarity", "invocation_triggers": "Drafts feel muddy", "is_canonical": true},
	{"tai_d": "PP-032", "name": "The Oracle", "capabilities": "THEOLOGY, MEANING, ALIGN", "role": "Theme & Scripture", "authority": "Decision Weight: 4", "status": "LOCKED", "category": "Writers Room", "decision_weight": 4, "behavioral_traits": "Theological integrator; Meaning", "invocation_triggers": "Scripture or theme involved", "is_canonical": true},
	{"tai_d": "PP-033", "name": "Louis Rowe Nichols", "capabilities": "SIMPLIFY, ALIGN, INTERRUPT", "role": "Head of Common Sense Committee", "authority": "Decision Weight: 5", "status": "LOCKED", "category": "Quality & Trust", "decision_weight": 5, "behavioral_traits": "Practical wisdom; Stop nonsense", "invocation_triggers": "Effort exceeds impact; values drift; momentum feels performative", "is_canonical": true},
}

var brandProfiles = []map[string]interface{}{
	{
		"name":       "GoGarvis Default",
		"guidelines": "Sharp edges, high contrast, monospace dominance, no decorative elements",
		"colors": map[string]interface{}{
			"primary":   "#FF4500",
			"secondary": "#1A1A1A",
		},
		"fonts": map[string]interface{}{
			"heading": "JetBrains Mono",
			"body":    "Manrope",
		},
		"logo_url": "",
	},
}
