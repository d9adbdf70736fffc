package catalog

// seedMovies is written on first access when the catalog key is absent.
func seedMovies() []Movie {
	return []Movie{
		{
			ID:           1,
			Title:        "Stranger Things: The Movie",
			Description:  "When a young boy vanishes, a small town uncovers a mystery involving secret experiments, terrifying supernatural forces, and one strange little girl.",
			PosterPath:   "https://image.tmdb.org/t/p/w500/x2LSRK2Cm7MZhjluni1msVJ3wDF.jpg",
			BackdropPath: "https://image.tmdb.org/t/p/original/56v2KjBlU4XaOv9rVYkOD82aLQ.jpg",
			Genres:       []string{"Sci-Fi", "Horror", "Drama"},
			Rating:       9.8,
			IsPremium:    true,
			Year:         2024,
			TrailerURL:   "https://www.youtube.com/embed/b9EkMc79ZSU",
		},
		{
			ID:           2,
			Title:        "The Dark Knight Rises",
			Description:  "Eight years after the Joker's reign of anarchy, Batman, with the help of the enigmatic Catwoman, is forced from his exile to save Gotham City from the brutal guerrilla terrorist Bane.",
			PosterPath:   "https://image.tmdb.org/t/p/w500/vzvKcPQ4o7TjWeGIn0aGC9FeVNu.jpg",
			BackdropPath: "https://image.tmdb.org/t/p/original/r17jFHAemzcWPPtoO0UxjIX0xas.jpg",
			Genres:       []string{"Action", "Thriller"},
			Rating:       9.0,
			IsPremium:    false,
			Year:         2012,
			TrailerURL:   "https://www.youtube.com/embed/g8evyE9TuYk",
		},
		{
			ID:           3,
			Title:        "Interstellar",
			Description:  "The adventures of a group of explorers who make use of a newly discovered wormhole to surpass the limitations on human space travel and conquer the vast distances involved in an interstellar voyage.",
			PosterPath:   "https://image.tmdb.org/t/p/w500/gEU2QniL6C8zEfCb88M3SYmFDqn.jpg",
			BackdropPath: "https://image.tmdb.org/t/p/original/pbrkL804c8yAv3zBZR4QPEafpAR.jpg",
			Genres:       []string{"Sci-Fi", "Adventure", "Drama"},
			Rating:       8.6,
			IsPremium:    true,
			Year:         2014,
			TrailerURL:   "https://www.youtube.com/embed/zSWdZVtXT7E",
		},
		{
			ID:           4,
			Title:        "Inception",
			Description:  "Cobb, a skilled thief who commits corporate espionage by infiltrating the subconscious of his targets is offered a chance to regain his old life as payment for a task considered to be impossible: \"inception\", the implantation of another person's idea into a target's subconscious.",
			PosterPath:   "https://image.tmdb.org/t/p/w500/9gk7adHYeDvHkCSEqAvQNLV5Uge.jpg",
			BackdropPath: "https://image.tmdb.org/t/p/original/s3TBrRGB1jav7y4argnzPkNPZiZ.jpg",
			Genres:       []string{"Action", "Sci-Fi", "Thriller"},
			Rating:       8.8,
			IsPremium:    false,
			Year:         2010,
			TrailerURL:   "https://www.youtube.com/embed/YoHD9XEInc0",
		},
		{
			ID:           5,
			Title:        "Avengers: Endgame",
			Description:  "After the devastating events of Infinity War, the universe is in ruins. With the help of remaining allies, the Avengers assemble once more in order to reverse Thanos' actions and restore balance to the universe.",
			PosterPath:   "https://image.tmdb.org/t/p/w500/or06FN3Dka5tukK1e9sl16pB3iy.jpg",
			BackdropPath: "https://image.tmdb.org/t/p/original/7RyHsO4yDXtBv1zUU3mTpHeQ0d5.jpg",
			Genres:       []string{"Action", "Adventure", "Sci-Fi"},
			Rating:       9.5,
			IsPremium:    true,
			Year:         2019,
			TrailerURL:   "https://www.youtube.com/embed/TcMBFSGVi1c",
		},
		{
			ID:           6,
			Title:        "The Matrix",
			Description:  "Set in the 22nd century, The Matrix tells the story of a computer hacker who joins a group of underground insurgents fighting the vast and powerful computers who now rule the earth.",
			PosterPath:   "https://image.tmdb.org/t/p/w500/f89U3ADr1oiB1s9GkdPOEpXUk5H.jpg",
			BackdropPath: "https://image.tmdb.org/t/p/original/l4QHerTSbMI7qgvxYnMSqWIBlII.jpg",
			Genres:       []string{"Action", "Sci-Fi"},
			Rating:       8.7,
			IsPremium:    false,
			Year:         1999,
			TrailerURL:   "https://www.youtube.com/embed/vKQi3bBA1y8",
		},
		{
			ID:           7,
			Title:        "Dune: Part Two",
			Description:  "Follow the mythic journey of Paul Atreides as he unites with Chani and the Fremen while on a warpath of revenge against the conspirators who destroyed his family.",
			PosterPath:   "https://image.tmdb.org/t/p/w500/1pdfLvkbY9ohJlCjQH2CZjjYVvJ.jpg",
			BackdropPath: "https://image.tmdb.org/t/p/original/xOMo8BRK7PfcJv9JCnx7s5hj0PX.jpg",
			Genres:       []string{"Sci-Fi", "Adventure"},
			Rating:       9.2,
			IsPremium:    true,
			Year:         2024,
			TrailerURL:   "https://www.youtube.com/embed/Way9Dexny3w",
		},
		{
			ID:           8,
			Title:        "Cyberpunk: Edgerunners",
			Description:  "In a dystopia riddled with corruption and cybernetic implants, a talented but reckless street kid strives to become a mercenary outlaw — an edgerunner.",
			PosterPath:   "https://image.tmdb.org/t/p/w500/7c4C21kE73fXW4g9b5f5f5f5f5f.jpg",
			BackdropPath: "https://image.tmdb.org/t/p/original/5DUMPBSnHOZsbBv81GFXZxwbD9b.jpg",
			Genres:       []string{"Anime", "Sci-Fi", "Action"},
			Rating:       8.9,
			IsPremium:    false,
			Year:         2022,
			TrailerURL:   "https://www.youtube.com/embed/JtqIas3bYhg",
		},
		{
			ID:           9,
			Title:        "The Godfather",
			Description:  "Spanning the years 1945 to 1955, a chronicle of the fictional Italian-American Corleone crime family. When organized crime family patriarch, Vito Corleone barely survives an attempt on his life, his youngest son, Michael steps in to take care of the would-be killers, launching a campaign of bloody revenge.",
			PosterPath:   "https://image.tmdb.org/t/p/w500/3bhkrj58Vtu7enYsRolD1fZdja1.jpg",
			BackdropPath: "https://image.tmdb.org/t/p/original/tmU7GeKVybMWFButWEGl2M4GeiP.jpg",
			Genres:       []string{"Drama", "Crime"},
			Rating:       9.3,
			IsPremium:    false,
			Year:         1972,
			TrailerURL:   "https://www.youtube.com/embed/sY1S34973zA",
		},
		{
			ID:           10,
			Title:        "Spider-Man: Across the Spider-Verse",
			Description:  "After reuniting with Gwen Stacy, Brooklyn's full-time, friendly neighborhood Spider-Man is catapulted across the Multiverse, where he encounters the Spider Society, a team of Spider-People charged with protecting the Multiverse's very existence.",
			PosterPath:   "https://image.tmdb.org/t/p/w500/8Vt6mWEReuy4Of61Lnj5Xj704m8.jpg",
			BackdropPath: "https://image.tmdb.org/t/p/original/4HodYYKEIsGOdinkGi2Ucz6X9i0.jpg",
			Genres:       []string{"Animation", "Action", "Adventure"},
			Rating:       9.4,
			IsPremium:    true,
			Year:         2023,
			TrailerURL:   "https://www.youtube.com/embed/shW9i6k8cB0",
		},
		{
			ID:           11,
			Title:        "Breaking Bad",
			Description:  "When Walter White, a New Mexico chemistry teacher, is diagnosed with Stage III cancer and given a prognosis of two years left to live. He becomes filled with a sense of fearlessness and an unrelenting desire to secure his family's financial future at any cost as he enters the dangerous world of drugs and crime.",
			PosterPath:   "https://image.tmdb.org/t/p/w500/ggFHVNu6YYI5L9pCfOacjizRGt.jpg",
			BackdropPath: "https://image.tmdb.org/t/p/original/tsRy63Mu5cu8etL1X7ZLyf7UP1M.jpg",
			Genres:       []string{"Drama", "Crime", "Thriller"},
			Rating:       9.5,
			IsPremium:    true,
			Year:         2008,
			TrailerURL:   "https://www.youtube.com/embed/HhesaQXLuRY",
		},
	}
}
