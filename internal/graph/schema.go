package graph

// Schema 对外暴露的 GraphQL 契约。
// seeUser 统一返回列表：带 email 命中返回单元素、未命中返回空，
// 不带 email 返回全部用户（类型检查下无法用单个 User 同时表达这三种结果）。
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Query {
		seeUser(email: String): [User!]!
		seePost(email: String!): [Post!]!
		seeCategories(name: String): [Category!]!
	}

	type Mutation {
		createPost(email: String!, title: String!, description: String!, categories: [String]): Post!
	}

	type User {
		id: Int!
		email: String!
		name: String
		posts: [Post]
	}

	type Post {
		id: Int!
		author: User!
		title: String!
		description: String!
		categories: [Category!]!
		createdAt: String!
		updatedAt: String!
	}

	type Category {
		id: Int!
		name: String!
		post: Post!
	}
`
